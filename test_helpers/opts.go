package test_helpers

import (
	"github.com/dcastello/horn-engine/logic"

	"github.com/google/go-cmp/cmp"
)

var (
	// TermOpts compares terms structurally, except for vars, which are only
	// equal to themselves: two cells with the same name are still different
	// variables.
	TermOpts = cmp.Options{
		cmp.Comparer(func(x, y *logic.Var) bool { return x == y }),
	}
)
