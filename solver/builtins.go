package solver

import (
	"fmt"

	"github.com/dcastello/horn-engine/logic"
)

// builtin evaluates a goal intercepted before database lookup. args are the
// goal's args and rest the remaining goals; the return value follows
// machine.solve.
type builtin func(m *machine, args, rest []logic.Term, found func() bool) bool

var builtins map[logic.Indicator]builtin

func init() {
	builtins = map[logic.Indicator]builtin{
		{Name: "true", Arity: 0}:  builtinTrue,
		{Name: "fail", Arity: 0}:  builtinFail,
		{Name: "=", Arity: 2}:     builtinUnify,
		{Name: "dif", Arity: 2}:   builtinDif,
		{Name: "write", Arity: 1}: builtinWrite,
		{Name: "nl", Arity: 0}:    builtinNl,
	}
}

func builtinTrue(m *machine, args, rest []logic.Term, found func() bool) bool {
	return m.solve(rest, found)
}

func builtinFail(m *machine, args, rest []logic.Term, found func() bool) bool {
	return true
}

// builtinUnify implements =/2. Bindings made on success stay on the trail;
// the enclosing choice point undoes them when backtracking past this goal.
func builtinUnify(m *machine, args, rest []logic.Term, found func() bool) bool {
	mark := m.trail.Mark()
	if !Unify(args[0], args[1], &m.trail) {
		m.trail.Unwind(mark)
		return true
	}
	return m.solve(rest, found)
}

// builtinDif implements dif/2 as a one-shot negative unification test: it
// succeeds iff its args do not unify. Trial bindings are always unwound,
// whatever the outcome, so dif never constrains future bindings.
func builtinDif(m *machine, args, rest []logic.Term, found func() bool) bool {
	mark := m.trail.Mark()
	ok := Unify(args[0], args[1], &m.trail)
	m.trail.Unwind(mark)
	if ok {
		return true
	}
	return m.solve(rest, found)
}

func builtinWrite(m *machine, args, rest []logic.Term, found func() bool) bool {
	fmt.Fprint(m.out, logic.Deref(args[0]))
	return m.solve(rest, found)
}

func builtinNl(m *machine, args, rest []logic.Term, found func() bool) bool {
	fmt.Fprintln(m.out)
	return m.solve(rest, found)
}
