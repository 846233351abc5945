// Package grammar declares the Ristretto grammar with participle. It is the
// reference the hand-written parser is checked against, and the source of the
// EBNF printed by `ristretto ebnf`.
package grammar

import (
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/vyPal/Ristretto/lib/lexer"
)

var refParser = participle.MustBuild[Program](
	participle.Lexer(lexer.Definition),
)

func Parser() *participle.Parser[Program] {
	return refParser
}

// EBNF returns the grammar in EBNF form.
func EBNF() string {
	return refParser.String()
}

func ParseString(filename, code string) (*Program, error) {
	return refParser.ParseString(filename, code)
}

func ParseFile(filename string) (*Program, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return refParser.Parse(filename, file)
}
