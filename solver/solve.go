// Package solver implements SLD resolution with chronological backtracking
// over a clause database.
//
// The search is depth-first: the first pending goal is replaced by the body
// of each database clause whose renamed head unifies with it, in clause
// declaration order, and every alternative starts from the same binding
// state by unwinding the trail. Solutions are enumerated exhaustively; a
// caller that wants only some of them stops the search from its callback or
// cancels the query.
package solver

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dcastello/horn-engine/logic"
	"github.com/dcastello/horn-engine/parser"
)

// Solution is a snapshot of the query vars' bindings at the moment all goals
// were proven. Values are structural copies, so they remain valid after the
// engine backtracks.
type Solution map[*logic.Var]logic.Term

// Solver owns a clause database and runs queries against it.
type Solver struct {
	// Out is the sink for write/1 and nl/0, and for the results of '?-'
	// directives run by Consult. Defaults to os.Stdout.
	Out io.Writer

	db *Database
}

// New returns a solver with an empty database.
func New() *Solver {
	return &Solver{Out: os.Stdout, db: NewDatabase()}
}

// NewFromClauses returns a solver whose database holds the given clauses.
func NewFromClauses(clauses []*logic.Clause) (*Solver, error) {
	s := New()
	for _, clause := range clauses {
		if err := s.Add(clause); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add stores a clause in the solver's database.
func (s *Solver) Add(clause *logic.Clause) error {
	return s.db.Add(clause)
}

// Consult parses program text, storing its clauses. Each '?-' directive is
// proven as soon as it is read, against the clauses defined so far, with its
// solutions written to s.Out.
func (s *Solver) Consult(text string) error {
	prog, err := parser.ParseProgram(text)
	if err != nil {
		return err
	}
	for _, sentence := range prog.Sentences {
		if sentence.Clause != nil {
			if err := s.Add(sentence.Clause); err != nil {
				return err
			}
			continue
		}
		s.runDirective(sentence.Query)
	}
	return nil
}

func (s *Solver) runDirective(goals []logic.Term) {
	vars := QueryVars(goals)
	found := false
	s.Solve(goals, func(sol Solution) bool {
		found = true
		fmt.Fprintln(s.Out, FormatSolution(vars, sol))
		return true
	})
	if !found {
		fmt.Fprintln(s.Out, "false.")
	}
}

// Solve proves the goals in order, invoking fn with a solution snapshot each
// time all of them are satisfied. Backtracking resumes after fn returns;
// returning false stops the search.
func (s *Solver) Solve(goals []logic.Term, fn func(Solution) bool) {
	m := &machine{db: s.db, out: s.Out}
	vars := QueryVars(goals)
	m.solve(goals, func() bool {
		return fn(snapshot(vars))
	})
}

// Query proves the goals on a background goroutine, delivering solutions on
// the returned channel. The channel is closed when the search is exhausted.
// The cancel function interrupts the search; it must be called if the caller
// abandons the channel before it is closed.
func (s *Solver) Query(goals ...logic.Term) (<-chan Solution, func()) {
	m := &machine{db: s.db, out: s.Out}
	vars := QueryVars(goals)
	stream := make(chan Solution)
	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.halt.Store(true)
			close(done)
		})
	}
	go func() {
		defer close(stream)
		m.solve(goals, func() bool {
			select {
			case stream <- snapshot(vars):
				return true
			case <-done:
				return false
			}
		})
	}()
	return stream, cancel
}

// QueryVars returns the non-anonymous free vars of the goals, in
// first-appearance order. These are the vars reported in solutions.
func QueryVars(goals []logic.Term) []*logic.Var {
	var xs []*logic.Var
	for _, x := range logic.Vars(goals...) {
		if x.IsAnonymous() {
			continue
		}
		xs = append(xs, x)
	}
	return xs
}

// FormatSolution renders a solution as "X = v1, Y = v2" with vars in the
// given order, or "true" if there are no vars to show.
func FormatSolution(vars []*logic.Var, sol Solution) string {
	if len(vars) == 0 {
		return "true"
	}
	parts := make([]string, len(vars))
	for i, x := range vars {
		parts[i] = fmt.Sprintf("%s = %v", x.Name, sol[x])
	}
	return strings.Join(parts, ", ")
}

func snapshot(vars []*logic.Var) Solution {
	sol := make(Solution, len(vars))
	for _, x := range vars {
		sol[x] = logic.Resolve(x)
	}
	return sol
}

// machine carries the mutable state of one resolution run: the trail and the
// halt flag. The database is read-only during the search.
type machine struct {
	db    *Database
	trail Trail
	out   io.Writer
	halt  atomic.Bool
}

// solve implements the search procedure. found is invoked when the goal list
// empties; both it and solve itself return whether to continue searching.
func (m *machine) solve(goals []logic.Term, found func() bool) bool {
	if m.halt.Load() {
		return false
	}
	if len(goals) == 0 {
		return found()
	}
	goal := logic.Deref(goals[0])
	rest := goals[1:]
	if g, ok := goal.(*logic.Struct); ok {
		if fn, ok := builtins[g.Indicator()]; ok {
			return fn(m, g.Args, rest, found)
		}
	}
	for _, clause := range m.db.Matching(goal) {
		mark := m.trail.Mark()
		fresh := clause.Rename()
		if Unify(goal, fresh.Head, &m.trail) {
			if !m.solve(append(fresh.Body, rest...), found) {
				m.trail.Unwind(mark)
				return false
			}
		}
		m.trail.Unwind(mark)
	}
	return true
}
