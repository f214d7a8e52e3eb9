package logic

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the var's current value, or its name if unbound.
func (x *Var) String() string {
	t := Deref(x)
	if v, ok := t.(*Var); ok {
		if v.Name == "" {
			return "_"
		}
		return v.Name
	}
	return t.String()
}

// String renders the number in the shortest decimal notation that
// round-trips.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// String renders the struct, dereferencing any bound vars within. Proper and
// improper lists built from './2' cells are shown in bracket notation.
func (s *Struct) String() string {
	if s.isListCell() || s.isEmptyList() {
		return s.listString()
	}
	if len(s.Args) == 0 {
		return s.Name
	}
	args := make([]string, len(s.Args))
	for i, arg := range s.Args {
		args[i] = Deref(arg).String()
	}
	return fmt.Sprintf("%s(%s)", s.Name, strings.Join(args, ", "))
}

func (s *Struct) isEmptyList() bool {
	return s.Name == "[]" && len(s.Args) == 0
}

func (s *Struct) isListCell() bool {
	return s.Name == "." && len(s.Args) == 2
}

func (s *Struct) listString() string {
	var b strings.Builder
	b.WriteByte('[')
	t := Term(s)
	first := true
	for {
		cell, ok := Deref(t).(*Struct)
		if ok && cell.isEmptyList() {
			break
		}
		if !ok || !cell.isListCell() {
			// Improper tail.
			b.WriteByte('|')
			b.WriteString(Deref(t).String())
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(Deref(cell.Args[0]).String())
		t = cell.Args[1]
	}
	b.WriteByte(']')
	return b.String()
}

func (c *Clause) String() string {
	head := Deref(c.Head).String()
	if len(c.Body) == 0 {
		return head + "."
	}
	body := make([]string, len(c.Body))
	for i, goal := range c.Body {
		body[i] = Deref(goal).String()
	}
	return fmt.Sprintf("%s :-\n  %s.", head, strings.Join(body, ",\n  "))
}
