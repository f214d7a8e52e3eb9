package logic_test

import (
	"github.com/dcastello/horn-engine/dsl"
)

var (
	atom   = dsl.Atom
	clause = dsl.Clause
	comp   = dsl.Comp
	ilist  = dsl.IList
	list   = dsl.List
	num    = dsl.Num
	var_   = dsl.Var
)
