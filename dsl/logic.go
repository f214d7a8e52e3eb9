// Package dsl provides short constructors for building terms in Go code.
//
// Note that Var returns a fresh cell on every call: goals that share a
// variable must reuse the same value, e.g.
//
//	x := dsl.Var("X")
//	dsl.Clause(dsl.Comp("nat", dsl.Comp("s", x)), dsl.Comp("nat", x))
package dsl

import (
	"github.com/dcastello/horn-engine/logic"
)

func Terms(terms ...logic.Term) []logic.Term {
	return terms
}

func Atom(name string) *logic.Struct {
	return logic.Atom(name)
}

func Num(value float64) logic.Number {
	return logic.Number(value)
}

func Var(name string) *logic.Var {
	return logic.NewVar(name)
}

func Comp(functor string, args ...logic.Term) *logic.Struct {
	return logic.NewStruct(functor, args...)
}

func Indicator(name string, arity int) logic.Indicator {
	return logic.Indicator{Name: name, Arity: arity}
}

func Clause(head logic.Term, body ...logic.Term) *logic.Clause {
	return logic.NewClause(head, body...)
}

func Clauses(cs ...*logic.Clause) []*logic.Clause {
	return cs
}

// ----

func List(terms ...logic.Term) logic.Term {
	return logic.NewList(terms...)
}

func IList(terms ...logic.Term) logic.Term {
	n := len(terms)
	butlast, last := terms[:n-1], terms[n-1]
	return logic.NewIncompleteList(butlast, last)
}
