package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dcastello/horn-engine/parser"
)

var (
	inputFilename = flag.String("input", "", "Input file (required)")
)

func main() {
	flag.Parse()
	if *inputFilename == "" {
		log.Fatalf("-input is required")
	}
	bs, err := os.ReadFile(*inputFilename)
	if err != nil {
		log.Fatalf("input: %v", err)
	}
	prog, err := parser.ParseProgram(string(bs))
	if err != nil {
		log.Fatalf("parse: %v", err)
	}
	for _, sentence := range prog.Sentences {
		if sentence.Clause != nil {
			fmt.Println(sentence.Clause)
			continue
		}
		goals := make([]string, len(sentence.Query))
		for i, goal := range sentence.Query {
			goals[i] = goal.String()
		}
		fmt.Printf("?- %s.\n", strings.Join(goals, ", "))
	}
}
