package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/vyPal/Ristretto/lib/analyzer"
	"github.com/vyPal/Ristretto/lib/ast"
	"github.com/vyPal/Ristretto/lib/grammar"
	"github.com/vyPal/Ristretto/lib/lexer"
	"github.com/vyPal/Ristretto/lib/parser"
	"github.com/vyPal/Ristretto/lib/project"
	"gopkg.in/yaml.v3"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "lex",
		Usage:     "Print the tokens of a Ristretto file",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{inputFlag()},
		Action:    lex,
	}, &cli.Command{
		Name:      "parse",
		Usage:     "Parse a Ristretto file and print its AST",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			inputFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "AST output format: " + strings.Join(project.Formats, ", "),
			},
			&cli.BoolFlag{
				Name:    "check",
				Aliases: []string{"c"},
				Usage:   "Also report identifiers used before they are defined",
			},
			&cli.BoolFlag{
				Name:    "dump-ast",
				Aliases: []string{"d"},
				Usage:   "Dump the AST to ast_dump.json",
			},
			&cli.IntFlag{
				Name:  "max-errors",
				Usage: "Stop after this many syntax errors (0 = no limit)",
			},
		},
		Action: parse,
	}, &cli.Command{
		Name:   "ebnf",
		Usage:  "Print the EBNF grammar of the language",
		Action: ebnf,
	})
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input-str",
		Aliases: []string{"s"},
		Usage:   "Read the source from a string instead of a file",
	}
}

func readSource(c *cli.Context) (string, string, error) {
	if c.IsSet("input-str") {
		return "", c.String("input-str"), nil
	}

	filename := c.Args().First()
	if filename == "" {
		return "", "", cli.Exit(color.RedString("Error: No file specified"), 1)
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return "", "", cli.Exit(color.RedString("Error reading file: %s", err), 1)
	}
	return filename, string(src), nil
}

func lex(c *cli.Context) error {
	if _, err := loadConfig(c); err != nil {
		return err
	}
	filename, src, err := readSource(c)
	if err != nil {
		return err
	}

	illegal := 0
	l := lexer.NewFile(filename, src)
	for tok := l.NextToken(); tok.Kind != lexer.EOF; tok = l.NextToken() {
		line := fmt.Sprintf("%s\t%s", tok.Pos, tok)
		if tok.Kind == lexer.Illegal {
			illegal++
			line = color.RedString("%s", line)
		}
		fmt.Fprintln(c.App.Writer, line)
	}

	if illegal > 0 {
		return cli.Exit(color.RedString("%d illegal character(s)", illegal), 1)
	}
	return nil
}

func parse(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	filename, src, err := readSource(c)
	if err != nil {
		return err
	}

	format := conf.Output.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	maxErrors := conf.Parser.MaxErrors
	if c.IsSet("max-errors") {
		maxErrors = c.Int("max-errors")
	}

	p := parser.New(lexer.NewFile(filename, src), parser.WithMaxErrors(maxErrors))
	program := p.ParseProgram()

	if err := writeAST(c.App.Writer, program, format, conf.Output.Indent); err != nil {
		return cli.Exit(color.RedString("Error printing AST: %s", err), 1)
	}

	if c.Bool("dump-ast") {
		astFile, err := os.Create("ast_dump.json")
		if err != nil {
			return cli.Exit(color.RedString("Error creating AST dump file: %s", err), 1)
		}
		defer astFile.Close()

		if err := writeAST(astFile, program, "json", conf.Output.Indent); err != nil {
			return cli.Exit(color.RedString("Error encoding AST: %s", err), 1)
		}
	}

	diags := p.Diagnostics()
	for _, d := range diags {
		fmt.Fprintln(c.App.ErrWriter, color.RedString("%s", d))
	}

	var warnings []participle.Error
	if c.Bool("check") {
		warnings = analyzer.Analyze(program)
		for _, w := range warnings {
			fmt.Fprintln(c.App.ErrWriter, color.YellowString("%s", w))
		}
	}

	if len(diags) > 0 {
		return cli.Exit(color.RedString("%d syntax error(s)", len(diags)), 1)
	}
	if len(warnings) > 0 {
		return cli.Exit(color.YellowString("%d undefined identifier(s)", len(warnings)), 1)
	}
	return nil
}

func writeAST(w io.Writer, program *ast.Program, format string, indent int) error {
	switch format {
	case "tree":
		return ast.Fprint(w, program)
	case "sexpr":
		for _, stmt := range program.Statements {
			if _, err := fmt.Fprintln(w, stmt); err != nil {
				return err
			}
		}
		return nil
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", indent))
		return encoder.Encode(ast.Describe(program))
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(indent)
		if err := encoder.Encode(ast.Describe(program)); err != nil {
			return err
		}
		return encoder.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

func ebnf(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, grammar.EBNF())
	return nil
}
