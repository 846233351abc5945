package parser

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/vyPal/Ristretto/lib/ast"
	"github.com/vyPal/Ristretto/lib/lexer"
)

// ErrorList is the set of diagnostics from one parse, in source order.
type ErrorList []participle.Error

func (e ErrorList) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e[0], len(e)-1)
}

// ParseString parses src and returns the program together with an ErrorList
// when any statement failed. The program is returned either way.
func ParseString(filename, src string, opts ...Option) (*ast.Program, error) {
	p := New(lexer.NewFile(filename, src), opts...)
	program := p.ParseProgram()
	return program, p.Err()
}

// ParseFile reads and parses filename.
func ParseFile(filename string, opts ...Option) (*ast.Program, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return ParseString(filename, string(src), opts...)
}
