package solver_test

import (
	"testing"

	"github.com/dcastello/horn-engine/logic"
	"github.com/dcastello/horn-engine/solver"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDatabase_Matching(t *testing.T) {
	p1 := clause(comp("p", num(1)))
	p2 := clause(comp("p", num(2)))
	q1 := clause(comp("q", num(1), num(2)))
	q0 := clause(atom("q"))

	db := solver.NewDatabase()
	for _, c := range clauses(p1, p2, q1, q0) {
		if err := db.Add(c); err != nil {
			t.Fatalf("Add(%v): got err: %v", c, err)
		}
	}
	if db.Size() != 4 {
		t.Errorf("Size() = %d, want 4", db.Size())
	}

	sameClause := cmp.Comparer(func(x, y *logic.Clause) bool { return x == y })
	tests := []struct {
		name string
		goal logic.Term
		want []*logic.Clause
	}{
		{"same functor and arity", comp("p", var_("X")), clauses(p1, p2)},
		{"arity distinguishes", atom("q"), clauses(q0)},
		{"unknown functor", comp("r", var_("X")), nil},
		{"var goal matches all", var_("G"), clauses(p1, p2, q1, q0)},
		{"number goal matches none", num(7), nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := db.Matching(test.goal)
			if diff := cmp.Diff(test.want, got, sameClause, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Matching(%v): (-want, +got)%s", test.goal, diff)
			}
		})
	}
}

func TestDatabase_MatchingDerefsGoal(t *testing.T) {
	c := clause(comp("p", num(1)))
	db := solver.NewDatabase()
	if err := db.Add(c); err != nil {
		t.Fatalf("Add: got err: %v", err)
	}
	x := var_("X")
	x.Ref = comp("p", var_("Y"))
	got := db.Matching(x)
	if len(got) != 1 || got[0] != c {
		t.Errorf("Matching(X) with X bound to p(Y) = %v, want [%v]", got, c)
	}
}

func TestDatabase_AddInvalidHead(t *testing.T) {
	db := solver.NewDatabase()
	for _, head := range terms(num(1), var_("X")) {
		if err := db.Add(clause(head)); err == nil {
			t.Errorf("Add with head %v: got nil err", head)
		}
	}
	if db.Size() != 0 {
		t.Errorf("Size() = %d after failed adds, want 0", db.Size())
	}
}
