// Package parser turns Prolog source text into terms, clauses and queries.
//
// The accepted syntax covers atoms (including quoted atoms), numbers,
// variables, compound terms, and lists in bracket notation with an optional
// '|' tail. A program is a sequence of facts, rules ('head :- goals.') and
// query directives ('?- goals.'), with '%' line comments.
package parser

import (
	"github.com/dcastello/horn-engine/errors"
	"github.com/dcastello/horn-engine/logic"
)

// Sentence is one program element: either a clause or a query directive.
type Sentence struct {
	// Clause is set for facts and rules, nil for queries.
	Clause *logic.Clause
	// Query holds the goals of a '?-' directive, nil for clauses.
	Query []logic.Term
}

// Program is a parsed source file, with sentences in source order.
type Program struct {
	Sentences []Sentence
}

// Clauses returns the program's clauses, in source order.
func (p *Program) Clauses() []*logic.Clause {
	var clauses []*logic.Clause
	for _, sentence := range p.Sentences {
		if sentence.Clause != nil {
			clauses = append(clauses, sentence.Clause)
		}
	}
	return clauses
}

// ParseProgram parses a sequence of facts, rules and query directives.
func ParseProgram(text string) (*Program, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	prog := new(Program)
	for p.cur().kind != tokenEOF {
		sentence, err := p.sentence()
		if err != nil {
			return nil, err
		}
		prog.Sentences = append(prog.Sentences, sentence)
	}
	return prog, nil
}

// ParseQuery parses a goal sequence terminated by '.', with an optional
// leading '?-'.
func ParseQuery(text string) ([]logic.Term, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	p.accept(tokenQuery)
	env := make(varEnv)
	goals, err := p.goals(env)
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokenDot, "query"); err != nil {
		return nil, err
	}
	if err := p.expect(tokenEOF, "query"); err != nil {
		return nil, err
	}
	return goals, nil
}

// ParseTerm parses a single term, which must span the whole text.
func ParseTerm(text string) (logic.Term, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	env := make(varEnv)
	term, err := p.term(env)
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokenEOF, "term"); err != nil {
		return nil, err
	}
	return term, nil
}

// varEnv maps names to var cells so that repeated occurrences within one
// clause or query share the same cell. A new env is used per sentence, which
// is what keeps variables from leaking across clauses.
type varEnv map[string]*logic.Var

func (env varEnv) get(name string) *logic.Var {
	if x, ok := env[name]; ok {
		return x
	}
	x := logic.NewVar(name)
	env[name] = x
	return x
}

type parser struct {
	tokens []token
	pos    int
}

func newParser(text string) (*parser, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	return &parser{tokens: tokens}, nil
}

func (p *parser) cur() token {
	return p.tokens[p.pos]
}

func (p *parser) accept(kind tokenKind) bool {
	if p.cur().kind != kind {
		return false
	}
	if kind != tokenEOF {
		p.pos++
	}
	return true
}

func (p *parser) expect(kind tokenKind, context string) error {
	if p.accept(kind) {
		return nil
	}
	tok := p.cur()
	return errors.New("%d:%d: expected %v in %s, got %v", tok.line, tok.col, kind, context, tok.kind)
}

// sentence parses one clause or query directive.
func (p *parser) sentence() (Sentence, error) {
	env := make(varEnv)
	if p.accept(tokenQuery) {
		goals, err := p.goals(env)
		if err != nil {
			return Sentence{}, err
		}
		if err := p.expect(tokenDot, "query"); err != nil {
			return Sentence{}, err
		}
		return Sentence{Query: goals}, nil
	}
	head, err := p.term(env)
	if err != nil {
		return Sentence{}, err
	}
	var body []logic.Term
	if p.accept(tokenNeck) {
		body, err = p.goals(env)
		if err != nil {
			return Sentence{}, err
		}
	}
	if err := p.expect(tokenDot, "clause"); err != nil {
		return Sentence{}, err
	}
	return Sentence{Clause: logic.NewClause(head, body...)}, nil
}

// goals parses a comma-separated goal sequence.
func (p *parser) goals(env varEnv) ([]logic.Term, error) {
	var goals []logic.Term
	for {
		goal, err := p.term(env)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
		if !p.accept(tokenComma) {
			return goals, nil
		}
	}
}

func (p *parser) term(env varEnv) (logic.Term, error) {
	tok := p.cur()
	switch tok.kind {
	case tokenVar:
		p.pos++
		return env.get(tok.text), nil
	case tokenNumber:
		p.pos++
		return logic.Number(tok.num), nil
	case tokenQuoted:
		p.pos++
		return logic.Atom(tok.text), nil
	case tokenAtom:
		p.pos++
		if !p.accept(tokenOpenParen) {
			return logic.Atom(tok.text), nil
		}
		args, err := p.args(env)
		if err != nil {
			return nil, err
		}
		return logic.NewStruct(tok.text, args...), nil
	case tokenOpenBracket:
		p.pos++
		return p.list(env)
	}
	return nil, errors.New("%d:%d: expected term, got %v", tok.line, tok.col, tok.kind)
}

// args parses a parenthesized term sequence, after the open paren.
func (p *parser) args(env varEnv) ([]logic.Term, error) {
	if p.accept(tokenCloseParen) {
		return nil, nil
	}
	var args []logic.Term
	for {
		arg, err := p.term(env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.accept(tokenComma) {
			continue
		}
		if err := p.expect(tokenCloseParen, "argument list"); err != nil {
			return nil, err
		}
		return args, nil
	}
}

// list parses a bracket list, after the open bracket.
func (p *parser) list(env varEnv) (logic.Term, error) {
	if p.accept(tokenCloseBracket) {
		return logic.Atom("[]"), nil
	}
	var terms []logic.Term
	for {
		term, err := p.term(env)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
		if p.accept(tokenComma) {
			continue
		}
		break
	}
	var tail logic.Term = logic.Atom("[]")
	if p.accept(tokenBar) {
		var err error
		tail, err = p.term(env)
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(tokenCloseBracket, "list"); err != nil {
		return nil, err
	}
	return logic.NewIncompleteList(terms, tail), nil
}
