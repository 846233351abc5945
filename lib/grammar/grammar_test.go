package grammar

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/vyPal/Ristretto/lib/parser"
)

var crossCheck = []string{
	"let x = 5;",
	"return 10;",
	"foobar; barbaz; quux;",
	"1 + 2 * 3;",
	"1 + 2 + 3;",
	"-a * b;",
	"!-a;",
	"a + b * c + d / e - f;",
	"5 > 4 == 3 < 4;",
	"5 < 4 != 3 > 4;",
	"3 + 4 * 5 == 3 * 1 + 4 * 5;",
	"let total = price * count - discount; return total > 100;",
	";; let a = 1;;",
	"",
}

func TestMatchesHandWrittenParser(t *testing.T) {
	for _, input := range crossCheck {
		ref, err := ParseString("", input)
		if err != nil {
			t.Errorf("%q: grammar rejected input: %v", input, err)
			continue
		}
		program, err := parser.ParseString("", input)
		if err != nil {
			t.Errorf("%q: parser rejected input: %v", input, err)
			continue
		}
		if ref.String() != program.String() {
			t.Errorf("%q: grammar=%q, parser=%q", input, ref.String(), program.String())
		}
	}
}

func TestRejectsWhatParserRejects(t *testing.T) {
	for _, input := range []string{"let x 5;", "let = 1;", "return;", "1 + ;", "let x = 5 6;"} {
		if _, err := ParseString("", input); err == nil {
			t.Errorf("%q: grammar accepted malformed input", input)
		}
		if _, err := parser.ParseString("", input); err == nil {
			t.Errorf("%q: parser accepted malformed input", input)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	_, err := ParseString("bad.rst", "let x = @;")
	perr, ok := err.(participle.Error)
	if !ok {
		t.Fatalf("expected participle.Error, got %T (%v)", err, err)
	}
	if perr.Position().Column != 9 || !strings.Contains(perr.Message(), "illegal character") {
		t.Errorf("unexpected error %v at %+v", perr.Message(), perr.Position())
	}
}

func TestEBNF(t *testing.T) {
	ebnf := EBNF()
	for _, rule := range []string{"Program", "Statement", "Let", "Equality", "Unary", "Primary"} {
		if !strings.Contains(ebnf, rule) {
			t.Errorf("EBNF lacks rule %s:\n%s", rule, ebnf)
		}
	}
}
