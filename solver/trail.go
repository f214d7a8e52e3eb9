package solver

import (
	"github.com/dcastello/horn-engine/logic"
)

// Trail is an append-only log of var bindings, enabling O(1) undo of all
// bindings made since a chosen mark. It is the sole mechanism to unbind a
// var: forward search only grows the trail, and backtracking shrinks it via
// Unwind.
type Trail struct {
	vars []*logic.Var
}

// Mark returns the current trail length, to be passed to Unwind later.
func (t *Trail) Mark() int {
	return len(t.vars)
}

// Record logs a var that was just bound. Called exactly once per successful
// binding, by the unifier.
func (t *Trail) Record(x *logic.Var) {
	t.vars = append(t.vars, x)
}

// Unwind resets every var bound after mark to unbound, in reverse binding
// order, and truncates the trail back to mark. Unwinding to the current mark
// is a no-op.
func (t *Trail) Unwind(mark int) {
	for i := len(t.vars) - 1; i >= mark; i-- {
		t.vars[i].Ref = nil
	}
	t.vars = t.vars[:mark]
}
