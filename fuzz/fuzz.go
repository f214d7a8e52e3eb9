package fuzz

import (
	"github.com/dcastello/horn-engine/parser"
)

func Fuzz(data []byte) int {
	_, err := parser.ParseProgram(string(data))
	if err != nil {
		return 0
	}
	return 1
}
