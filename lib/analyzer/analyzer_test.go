package analyzer

import (
	"testing"

	"github.com/vyPal/Ristretto/lib/ast"
	"github.com/vyPal/Ristretto/lib/parser"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		input     string
		undefined []string
	}{
		{"let a = 1; let b = a * 2; return a + b;", nil},
		{"return x;", []string{"undefined identifier: x"}},
		{"let x = x;", []string{"undefined identifier: x"}},
		{"let x = 1; let x = x + 1; x;", nil},
		{"y + 1; let y = 2; -y == !z;", []string{"undefined identifier: y", "undefined identifier: z"}},
		{"1 + 2 * 3;", nil},
	}

	for _, tt := range tests {
		program, err := parser.ParseString("", tt.input)
		if err != nil {
			t.Fatalf("%q: parse error: %v", tt.input, err)
		}
		errs := Analyze(program)
		if len(errs) != len(tt.undefined) {
			t.Errorf("%q: expected %d diagnostics, got %d: %v", tt.input, len(tt.undefined), len(errs), errs)
			continue
		}
		for i, want := range tt.undefined {
			if errs[i].Message() != want {
				t.Errorf("%q: diagnostic %d got=%q, want=%q", tt.input, i, errs[i].Message(), want)
			}
		}
	}
}

func TestAnalyzePosition(t *testing.T) {
	program, _ := parser.ParseString("calc.rst", "let a = 1;\nreturn a + b;")
	errs := Analyze(program)
	if len(errs) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(errs))
	}
	pos := errs[0].Position()
	if pos.Filename != "calc.rst" || pos.Line != 2 || pos.Column != 12 {
		t.Errorf("unexpected position %+v", pos)
	}
}

func TestContextRebinding(t *testing.T) {
	program, _ := parser.ParseString("", "let a = 1;\nlet a = 2;")
	ctx := NewContext()
	if _, ok := ctx.LookupVariable("a"); ok {
		t.Fatalf("fresh context should be empty")
	}
	for _, stmt := range program.Statements {
		ctx.Define(stmt.(*ast.LetStatement).Name)
	}
	v, ok := ctx.LookupVariable("a")
	if !ok || v.Pos.Line != 2 {
		t.Errorf("expected the second binding of a, got %+v (found=%v)", v, ok)
	}
}
