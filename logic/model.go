// Package logic implements the term model for a logic engine.
//
// A term falls in one of three categories:
//
// * variable: a mutable cell that is either unbound or references another term.
//
// * number: an immutable numeric literal.
//
// * struct: a named term containing other terms, recursively. An atom is a
// struct with no args.
//
// Unlike source-level representations that keep terms immutable, vars here
// are the unification engine's working state: binding a var mutates its cell,
// and undoing a binding restores it to unbound. All other terms are immutable
// after construction.
package logic

import (
	"fmt"
)

// Term is a representation of a logic term.
type Term interface {
	String() string
	isTerm()
}

// Var is a variable term: an identity-bearing cell that is either unbound
// (Ref == nil) or bound to another term. Two vars are the same only if they
// are the same cell; the name is just a label for rendering.
type Var struct {
	// Name is the source-level identifier, if any.
	Name string
	// Ref is the term this var is bound to, or nil if unbound.
	Ref Term
}

// Number is an atomic term representing a numeric literal.
type Number float64

// Struct is a compound term with a functor name and a fixed list of args.
// An atom is represented as a struct with zero args.
type Struct struct {
	// Name is the functor of the struct.
	Name string
	// Args is the list of terms within this term. Its length never changes
	// after construction.
	Args []Term
}

func (x *Var) isTerm()    {}
func (n Number) isTerm()  {}
func (s *Struct) isTerm() {}

// NewVar creates a fresh, unbound var with the given name.
func NewVar(name string) *Var {
	return &Var{Name: name}
}

// IsAnonymous returns whether this var should be hidden from solutions, per
// the convention that names starting with '_' are throwaway.
func (x *Var) IsAnonymous() bool {
	return x.Name == "" || x.Name[0] == '_'
}

// NewStruct creates a compound term.
func NewStruct(name string, args ...Term) *Struct {
	return &Struct{Name: name, Args: args}
}

// Atom creates an atom, that is, a struct with no args.
func Atom(name string) *Struct {
	return &Struct{Name: name}
}

// Cons creates a list cell '.'(head, tail).
func Cons(head, tail Term) *Struct {
	return &Struct{Name: ".", Args: []Term{head, tail}}
}

// NewList creates a proper list of the provided terms, terminated by '[]'.
func NewList(terms ...Term) Term {
	return NewIncompleteList(terms, Atom("[]"))
}

// NewIncompleteList creates a list of the provided terms with an arbitrary
// tail, usually an unbound var or another list.
func NewIncompleteList(terms []Term, tail Term) Term {
	for i := len(terms) - 1; i >= 0; i-- {
		tail = Cons(terms[i], tail)
	}
	return tail
}

// Indicator is a notation for a struct's name and arity, e.g., f/2.
type Indicator struct {
	// Name is the struct's functor.
	Name string
	// Arity is the struct's number of args.
	Arity int
}

// Indicator returns the struct's indicator.
func (s *Struct) Indicator() Indicator {
	return Indicator{s.Name, len(s.Args)}
}

func (i Indicator) String() string {
	return fmt.Sprintf("%s/%d", i.Name, i.Arity)
}

// Deref follows the binding chain from t until reaching a number, a struct,
// or an unbound var, and returns that terminal term. It never mutates
// anything.
func Deref(t Term) Term {
	x, ok := t.(*Var)
	for ok && x.Ref != nil {
		t = x.Ref
		x, ok = t.(*Var)
	}
	return t
}

// Resolve returns a structural copy of t where every bound var is replaced
// by its (recursively resolved) value. Unbound vars are kept as-is, so the
// result shares their identity with the input.
//
// Resolve does not terminate on cyclic terms, which unification without
// occurs check may build.
func Resolve(t Term) Term {
	t = Deref(t)
	switch t := t.(type) {
	case *Var:
		return t
	case Number:
		return t
	case *Struct:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Resolve(arg)
		}
		return &Struct{Name: t.Name, Args: args}
	}
	return t
}

// ---- Clauses

// Clause is the representation of a logic rule: the head holds if all body
// terms hold. A clause with an empty body is a fact.
// Note that Clause is not a Term, so it can't be used within compound terms.
type Clause struct {
	// Head is the consequent of a clause. Must be a struct.
	Head Term
	// Body is the antecedent of a clause, a sequence of goals.
	Body []Term
}

// NewClause returns a clause with the provided head and terms as body.
func NewClause(head Term, body ...Term) *Clause {
	return &Clause{Head: head, Body: body}
}

// Rename returns a structural copy of the clause where all vars are replaced
// by fresh, unbound ones. Vars shared between head and body remain shared in
// the copy, but no var is ever shared across separate Rename calls, so each
// activation of a clause is independent.
func (c *Clause) Rename() *Clause {
	fresh := make(map[*Var]*Var)
	head := renameTerm(c.Head, fresh)
	var body []Term
	if len(c.Body) > 0 {
		body = make([]Term, len(c.Body))
		for i, goal := range c.Body {
			body[i] = renameTerm(goal, fresh)
		}
	}
	return &Clause{Head: head, Body: body}
}

func renameTerm(t Term, fresh map[*Var]*Var) Term {
	switch t := t.(type) {
	case *Var:
		if x, ok := fresh[t]; ok {
			return x
		}
		x := NewVar(t.Name)
		fresh[t] = x
		return x
	case Number:
		return t
	case *Struct:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = renameTerm(arg, fresh)
		}
		return &Struct{Name: t.Name, Args: args}
	}
	return t
}

// ---- Vars

// Vars returns the set of vars in the provided terms, in first-appearance
// order. Bound vars are dereferenced, so only the unbound cells reachable
// from the terms are listed.
func Vars(terms ...Term) []*Var {
	var xs []*Var
	seen := make(map[*Var]struct{})
	for _, t := range terms {
		xs = collectVars(t, seen, xs)
	}
	return xs
}

func collectVars(t Term, seen map[*Var]struct{}, xs []*Var) []*Var {
	switch t := Deref(t).(type) {
	case *Var:
		if _, ok := seen[t]; ok {
			return xs
		}
		seen[t] = struct{}{}
		return append(xs, t)
	case *Struct:
		for _, arg := range t.Args {
			xs = collectVars(arg, seen, xs)
		}
	}
	return xs
}
