package solver_test

import (
	"fmt"
	"log"

	"github.com/dcastello/horn-engine/parser"
	"github.com/dcastello/horn-engine/solver"
)

func Example() {
	s := solver.New()
	err := s.Consult(`
        add(0, X, X).
        add(s(X), Y, s(Z)) :- add(X, Y, Z).
    `)
	if err != nil {
		log.Fatal(err)
	}
	goals, err := parser.ParseQuery("?- add(X, Y, s(s(0))).")
	if err != nil {
		log.Fatal(err)
	}
	vars := solver.QueryVars(goals)
	solutions, _ := s.Query(goals...)
	for solution := range solutions {
		fmt.Println(solver.FormatSolution(vars, solution))
	}
	// Output:
	// X = 0, Y = s(s(0))
	// X = s(0), Y = s(0)
	// X = s(s(0)), Y = 0
}
