package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dcastello/horn-engine/logic"
	"github.com/dcastello/horn-engine/parser"
	"github.com/dcastello/horn-engine/solver"

	"github.com/chzyer/readline"
)

var (
	consultFiles = flag.String("consult-files", "", "Comma-separated files to consult, in order")
	query        = flag.String("query", "", "Initial query to issue")
	interactive  = flag.Bool("interactive", true, "Whether the REPL is interactive")
	demo         = flag.Bool("demo", false, "Consult the embedded demo program")
)

// Same program the original interpreter ships with.
const demoProgram = `
% Prolog-like demo
parent(alice, bob).
parent(bob, carol).
parent(alice, dana).
male(bob).
female(alice).

ancestor(X,Y) :- parent(X,Y).
ancestor(X,Y) :- parent(X,Z), ancestor(Z,Y).

write_list([]).
write_list([H|T]) :- write(H), write(' '), write_list(T).

?- ancestor(A, carol), write('A='), write(A), nl.
`

type inputState int

const (
	readingQuery inputState = iota
	enumerateSolutions
)

type ctx struct {
	interrupt chan os.Signal
	solver    *solver.Solver
	readline  *readline.Instance
}

func main() {
	flag.Parse()
	if !*interactive && len(*query) == 0 && len(*consultFiles) == 0 && !*demo {
		log.Fatal("No query provided for non-interactive REPL")
	}

	ctx := ctx{}
	ctx.interrupt = make(chan os.Signal, 1)
	signal.Notify(ctx.interrupt, syscall.SIGINT)

	ctx.solver = solver.New()
	if *demo {
		if err := ctx.solver.Consult(demoProgram); err != nil {
			log.Fatal(err)
		}
	}
	files := strings.Split(*consultFiles, ",")
	for _, file := range files {
		if len(file) == 0 {
			continue
		}
		consultFile(ctx.solver, file)
	}

	if *interactive {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:                 "?- ",
			HistoryFile:            "/tmp/readline-history",
			DisableAutoSaveHistory: true,
		})
		if err != nil {
			log.Fatal(err)
		}
		defer rl.Close()
		ctx.readline = rl
	}

	ctx.mainLoop()
}

func consultFile(s *solver.Solver, filename string) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		log.Print(err)
		return
	}
	if err := s.Consult(string(bs)); err != nil {
		log.Print(err)
		return
	}
}

func (ctx ctx) mainLoop() {
	state := readingQuery
	var solutions <-chan solver.Solution
	var vars []*logic.Var
	var cancel func()
	if len(*query) > 0 {
		goals, err := parser.ParseQuery(*query)
		if err != nil {
			log.Fatal(err)
		}
		vars = solver.QueryVars(goals)
		solutions, cancel = ctx.solver.Query(goals...)
		state = enumerateSolutions
	}
	if !*interactive {
		if solutions == nil {
			return
		}
		hasSolutions := false
		for solution := range solutions {
			hasSolutions = true
			fmt.Println(solver.FormatSolution(vars, solution))
		}
		if !hasSolutions {
			fmt.Println("false.")
		}
		return
	}
	for {
		switch state {
		default:
			log.Print("Invalid state:", state)
			return
		case readingQuery:
			goals, isClose := ctx.readQuery()
			if isClose {
				return
			}
			if goals == nil {
				continue
			}
			vars = solver.QueryVars(goals)
			solutions, cancel = ctx.solver.Query(goals...)
			state = enumerateSolutions
		case enumerateSolutions:
			if isClose := ctx.solutionState(solutions, vars, cancel); isClose {
				state = readingQuery
			}
		}
	}
}

func (ctx ctx) readQuery() ([]logic.Term, bool) {
	ctx.readline.SetPrompt("?- ")
	var lines []string
	for {
		line, err := ctx.readline.Readline()
		if err != nil {
			return nil, true
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
		if !strings.HasSuffix(line, ".") {
			ctx.readline.SetPrompt("|  ")
			continue
		}
		break
	}
	text := strings.Join(lines, " ")
	ctx.readline.SaveHistory(text)
	goals, err := parser.ParseQuery(text)
	if err != nil {
		log.Print(err)
		return nil, false
	}
	return goals, false
}

func (ctx ctx) solutionState(solutions <-chan solver.Solution, vars []*logic.Var, cancel func()) bool {
	select {
	case solution, ok := <-solutions:
		if !ok {
			fmt.Println("false.")
			return true
		}
		fmt.Println(solver.FormatSolution(vars, solution))
		if isClose := ctx.readCommand(); isClose {
			cancel()
			return true
		}
		return false
	case <-ctx.interrupt:
		cancel()
		return true
	}
}

func (ctx ctx) readCommand() bool {
	for {
		ctx.readline.SetPrompt("")
		line, err := ctx.readline.Readline()
		if err != nil {
			return true
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line == ";" {
			return false
		}
		if line == "." {
			return true
		}
		log.Print("Expecting '.' or ';'")
	}
}
