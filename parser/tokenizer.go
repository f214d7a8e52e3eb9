package parser

import (
	"strconv"
	"unicode"

	"github.com/dcastello/horn-engine/errors"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenDot
	tokenComma
	tokenOpenParen
	tokenCloseParen
	tokenOpenBracket
	tokenCloseBracket
	tokenBar
	tokenNeck  // :-
	tokenQuery // ?-
	tokenAtom
	tokenQuoted
	tokenVar
	tokenNumber
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenDot:
		return "'.'"
	case tokenComma:
		return "','"
	case tokenOpenParen:
		return "'('"
	case tokenCloseParen:
		return "')'"
	case tokenOpenBracket:
		return "'['"
	case tokenCloseBracket:
		return "']'"
	case tokenBar:
		return "'|'"
	case tokenNeck:
		return "':-'"
	case tokenQuery:
		return "'?-'"
	case tokenAtom:
		return "atom"
	case tokenQuoted:
		return "quoted atom"
	case tokenVar:
		return "variable"
	case tokenNumber:
		return "number"
	}
	return "unknown token"
}

type token struct {
	kind      tokenKind
	text      string
	num       float64
	line, col int
}

type lexer struct {
	runes     []rune
	pos       int
	line, col int
}

func newLexer(text string) *lexer {
	return &lexer{runes: []rune(text), line: 1, col: 1}
}

func (l *lexer) peek() rune {
	if l.pos < len(l.runes) {
		return l.runes[l.pos]
	}
	return 0
}

func (l *lexer) peek2() rune {
	if l.pos+1 < len(l.runes) {
		return l.runes[l.pos+1]
	}
	return 0
}

func (l *lexer) next() rune {
	ch := l.peek()
	if ch == 0 {
		return 0
	}
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *lexer) skipSpaceAndComments() {
	for {
		ch := l.peek()
		if ch == '%' {
			for ch != 0 && ch != '\n' {
				l.next()
				ch = l.peek()
			}
			continue
		}
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.next()
			continue
		}
		return
	}
}

var punctuation = map[rune]tokenKind{
	'.': tokenDot,
	',': tokenComma,
	'(': tokenOpenParen,
	')': tokenCloseParen,
	'[': tokenOpenBracket,
	']': tokenCloseBracket,
	'|': tokenBar,
}

func isIdent(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// tokenize splits text into tokens, stripping whitespace and '%' comments.
func tokenize(text string) ([]token, error) {
	l := newLexer(text)
	var tokens []token
	for {
		l.skipSpaceAndComments()
		line, col := l.line, l.col
		ch := l.peek()
		if ch == 0 {
			tokens = append(tokens, token{kind: tokenEOF, line: line, col: col})
			return tokens, nil
		}
		if kind, ok := punctuation[ch]; ok {
			l.next()
			tokens = append(tokens, token{kind: kind, text: string(ch), line: line, col: col})
			continue
		}
		if ch == ':' && l.peek2() == '-' {
			l.next()
			l.next()
			tokens = append(tokens, token{kind: tokenNeck, text: ":-", line: line, col: col})
			continue
		}
		if ch == '?' && l.peek2() == '-' {
			l.next()
			l.next()
			tokens = append(tokens, token{kind: tokenQuery, text: "?-", line: line, col: col})
			continue
		}
		if ch == '\'' {
			text, err := l.quoted()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokenQuoted, text: text, line: line, col: col})
			continue
		}
		if unicode.IsDigit(ch) || (ch == '-' && unicode.IsDigit(l.peek2())) {
			text, num, err := l.number()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokenNumber, text: text, num: num, line: line, col: col})
			continue
		}
		if isIdent(ch) {
			name := l.ident()
			kind := tokenAtom
			first := []rune(name)[0]
			if unicode.IsUpper(first) || first == '_' {
				kind = tokenVar
			}
			tokens = append(tokens, token{kind: kind, text: name, line: line, col: col})
			continue
		}
		return nil, errors.New("%d:%d: unexpected character %q", line, col, ch)
	}
}

// quoted consumes a '...'-delimited atom with minimal escapes.
func (l *lexer) quoted() (string, error) {
	line, col := l.line, l.col
	l.next() // opening quote
	var chars []rune
	for {
		ch := l.peek()
		if ch == 0 {
			return "", errors.New("%d:%d: unterminated quoted atom", line, col)
		}
		if ch == '\'' {
			l.next()
			return string(chars), nil
		}
		ch = l.next()
		if ch == '\\' && l.peek() != 0 {
			switch esc := l.next(); esc {
			case 'n':
				ch = '\n'
			case 't':
				ch = '\t'
			default:
				ch = esc
			}
		}
		chars = append(chars, ch)
	}
}

// number consumes digits with at most one decimal point, and an optional
// leading '-'.
func (l *lexer) number() (string, float64, error) {
	line, col := l.line, l.col
	var chars []rune
	if l.peek() == '-' {
		chars = append(chars, l.next())
	}
	dot := false
	for {
		ch := l.peek()
		if ch == '.' {
			if dot || !unicode.IsDigit(l.peek2()) {
				break
			}
			dot = true
		} else if !unicode.IsDigit(ch) {
			break
		}
		chars = append(chars, l.next())
	}
	text := string(chars)
	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return "", 0, errors.New("%d:%d: invalid number %q: %v", line, col, text, err)
	}
	return text, num, nil
}

func (l *lexer) ident() string {
	var chars []rune
	for isIdent(l.peek()) {
		chars = append(chars, l.next())
	}
	return string(chars)
}
