package solver

import (
	"github.com/dcastello/horn-engine/errors"
	"github.com/dcastello/horn-engine/logic"
)

// Database is an insertion-ordered collection of clauses, indexed by the
// head's functor and arity. It is populated at load time and read-only
// during resolution.
type Database struct {
	clauses []*logic.Clause
	index   map[logic.Indicator][]*logic.Clause
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{index: make(map[logic.Indicator][]*logic.Clause)}
}

// Add appends a clause to the database. The clause head must be an atom or
// compound term.
func (db *Database) Add(clause *logic.Clause) error {
	head, ok := logic.Deref(clause.Head).(*logic.Struct)
	if !ok {
		return errors.New("invalid clause head: %v (must be atom or compound term)", clause.Head)
	}
	db.clauses = append(db.clauses, clause)
	ind := head.Indicator()
	db.index[ind] = append(db.index[ind], clause)
	return nil
}

// Matching returns the clauses whose head may unify with goal, in insertion
// order: clauses with the same functor and arity as the (dereferenced) goal,
// or every clause if the goal is an unbound var.
func (db *Database) Matching(goal logic.Term) []*logic.Clause {
	switch g := logic.Deref(goal).(type) {
	case *logic.Var:
		return db.clauses
	case *logic.Struct:
		return db.index[g.Indicator()]
	}
	return nil
}

// Size returns the number of stored clauses.
func (db *Database) Size() int {
	return len(db.clauses)
}
