package solver

import (
	"github.com/dcastello/horn-engine/logic"
)

// Unify makes a and b structurally equal by binding unbound vars, recording
// every binding on the trail. It reports whether unification succeeded.
//
// On failure, bindings made before the failing step are left in place; the
// caller is responsible for unwinding to a mark taken before the call. This
// lets the resolver decide when to retry.
//
// There is no occurs check: binding a var to a struct that contains that same
// var is permitted and builds a cyclic term.
func Unify(a, b logic.Term, tr *Trail) bool {
	a, b = logic.Deref(a), logic.Deref(b)
	if a == b {
		// Same var cell, same struct cell, or equal numbers.
		return true
	}
	if x, ok := a.(*logic.Var); ok {
		x.Ref = b
		tr.Record(x)
		return true
	}
	if y, ok := b.(*logic.Var); ok {
		y.Ref = a
		tr.Record(y)
		return true
	}
	switch t1 := a.(type) {
	case logic.Number:
		t2, ok := b.(logic.Number)
		return ok && t1 == t2
	case *logic.Struct:
		t2, ok := b.(*logic.Struct)
		if !ok || t1.Name != t2.Name || len(t1.Args) != len(t2.Args) {
			return false
		}
		for i := range t1.Args {
			if !Unify(t1.Args[i], t2.Args[i], tr) {
				return false
			}
		}
		return true
	}
	return false
}
