// Package repl implements the interactive shell: each line read is lexed
// (or parsed) on its own and the result printed before the next prompt.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vyPal/Ristretto/lib/lexer"
	"github.com/vyPal/Ristretto/lib/parser"
)

const (
	ModeLex   = "lex"
	ModeParse = "parse"
)

type Options struct {
	Prompt string
	Mode   string
}

// Start runs the loop until in is exhausted.
func Start(in io.Reader, out io.Writer, opts Options) error {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(out, color.CyanString(opts.Prompt))

		line, err := reader.ReadString('\n')
		if line != "" {
			if opts.Mode == ModeParse {
				printProgram(out, line)
			} else {
				printTokens(out, line)
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func printTokens(out io.Writer, line string) {
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Kind != lexer.EOF; tok = l.NextToken() {
		if tok.Kind == lexer.Illegal {
			fmt.Fprintln(out, color.RedString("%s", tok))
			continue
		}
		fmt.Fprintln(out, tok)
	}
}

func printProgram(out io.Writer, line string) {
	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	for _, msg := range p.Errors() {
		fmt.Fprintln(out, color.RedString("\t%s", msg))
	}
	if s := program.String(); strings.TrimSpace(s) != "" {
		fmt.Fprintln(out, s)
	}
}
