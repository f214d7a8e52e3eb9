package solver_test

import (
	"testing"

	"github.com/dcastello/horn-engine/logic"
	"github.com/dcastello/horn-engine/solver"
)

func TestUnify(t *testing.T) {
	tests := []struct {
		name  string
		build func() (logic.Term, logic.Term)
		want  bool
	}{
		{
			"equal atoms",
			func() (logic.Term, logic.Term) { return atom("a"), atom("a") },
			true,
		},
		{
			"different atoms",
			func() (logic.Term, logic.Term) { return atom("a"), atom("b") },
			false,
		},
		{
			"equal numbers",
			func() (logic.Term, logic.Term) { return num(1.5), num(1.5) },
			true,
		},
		{
			"different numbers",
			func() (logic.Term, logic.Term) { return num(1), num(2) },
			false,
		},
		{
			"number vs struct",
			func() (logic.Term, logic.Term) { return num(1), atom("a") },
			false,
		},
		{
			"var binds to struct",
			func() (logic.Term, logic.Term) { return var_("X"), comp("f", atom("a")) },
			true,
		},
		{
			"same functor and args",
			func() (logic.Term, logic.Term) {
				return comp("f", num(1), atom("a")), comp("f", num(1), atom("a"))
			},
			true,
		},
		{
			"same functor, different arity",
			func() (logic.Term, logic.Term) {
				return comp("foo", num(1), num(2)), comp("foo", num(1), num(2), num(3))
			},
			false,
		},
		{
			"shared var both sides",
			func() (logic.Term, logic.Term) {
				x, y := var_("X"), var_("Y")
				return comp("f", x, x), comp("f", atom("a"), y)
			},
			true,
		},
		{
			"shared var conflict",
			func() (logic.Term, logic.Term) {
				x := var_("X")
				return comp("f", x, x), comp("f", atom("a"), atom("b"))
			},
			false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Unification must be symmetric, with each direction starting
			// from fresh terms.
			var tr solver.Trail
			a, b := test.build()
			if got := solver.Unify(a, b, &tr); got != test.want {
				t.Errorf("Unify(%v, %v) = %t, want %t", a, b, got, test.want)
			}
			var tr2 solver.Trail
			a, b = test.build()
			if got := solver.Unify(b, a, &tr2); got != test.want {
				t.Errorf("Unify(%v, %v) = %t, want %t", b, a, got, test.want)
			}
		})
	}
}

func TestUnify_ArityMismatchBindsNothing(t *testing.T) {
	var tr solver.Trail
	x, y := var_("X"), var_("Y")
	a := comp("foo", x, num(2))
	b := comp("foo", num(1), num(2), y)

	if solver.Unify(a, b, &tr) {
		t.Fatal("Unify succeeded, want failure")
	}
	if x.Ref != nil || y.Ref != nil {
		t.Errorf("arity mismatch must fail before binding: X=%v, Y=%v", x.Ref, y.Ref)
	}
	if tr.Mark() != 0 {
		t.Errorf("trail has %d entries, want 0", tr.Mark())
	}
}

func TestUnify_PartialBindingsLeftToCaller(t *testing.T) {
	var tr solver.Trail
	x := var_("X")
	mark := tr.Mark()

	// First arg binds X, second arg fails.
	if solver.Unify(comp("f", x, atom("b")), comp("f", atom("a"), atom("c")), &tr) {
		t.Fatal("Unify succeeded, want failure")
	}
	if x.Ref == nil {
		t.Fatal("partial binding of X should be left in place on failure")
	}
	tr.Unwind(mark)
	if x.Ref != nil {
		t.Errorf("X still bound after unwind: %v", x.Ref)
	}
}

func TestUnify_NoOccursCheck(t *testing.T) {
	var tr solver.Trail
	x := var_("X")

	// X = f(X) is allowed and builds a cyclic term.
	if !solver.Unify(x, comp("f", x), &tr) {
		t.Fatal("Unify(X, f(X)) failed, want success")
	}
	if x.Ref == nil {
		t.Fatal("X left unbound")
	}
}

func TestTrail_Unwind(t *testing.T) {
	var tr solver.Trail
	x, y, z := var_("X"), var_("Y"), var_("Z")

	solver.Unify(x, atom("a"), &tr)
	mark := tr.Mark()
	solver.Unify(y, atom("b"), &tr)
	solver.Unify(z, comp("f", x), &tr)

	tr.Unwind(mark)
	if y.Ref != nil || z.Ref != nil {
		t.Errorf("vars bound after mark must be unbound: Y=%v, Z=%v", y.Ref, z.Ref)
	}
	if x.Ref == nil {
		t.Errorf("var bound before mark must be untouched")
	}

	// Unwinding to the current mark is a no-op.
	tr.Unwind(tr.Mark())
	if x.Ref == nil {
		t.Errorf("idempotent unwind cleared X")
	}
}
