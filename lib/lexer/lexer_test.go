package lexer

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

10 == 10;
10 != 9;
foo_bar;`

	tests := []struct {
		expectedKind    Kind
		expectedLiteral string
	}{
		{Let, "let"},
		{Ident, "five"},
		{Assign, "="},
		{Int, "5"},
		{Semicolon, ";"},
		{Let, "let"},
		{Ident, "ten"},
		{Assign, "="},
		{Int, "10"},
		{Semicolon, ";"},
		{Let, "let"},
		{Ident, "add"},
		{Assign, "="},
		{Function, "fn"},
		{LParen, "("},
		{Ident, "x"},
		{Comma, ","},
		{Ident, "y"},
		{RParen, ")"},
		{LBrace, "{"},
		{Ident, "x"},
		{Plus, "+"},
		{Ident, "y"},
		{Semicolon, ";"},
		{RBrace, "}"},
		{Semicolon, ";"},
		{Let, "let"},
		{Ident, "result"},
		{Assign, "="},
		{Ident, "add"},
		{LParen, "("},
		{Ident, "five"},
		{Comma, ","},
		{Ident, "ten"},
		{RParen, ")"},
		{Semicolon, ";"},
		{Bang, "!"},
		{Minus, "-"},
		{Slash, "/"},
		{Asterisk, "*"},
		{Int, "5"},
		{Semicolon, ";"},
		{Int, "5"},
		{LessThan, "<"},
		{Int, "10"},
		{GreaterThan, ">"},
		{Int, "5"},
		{Semicolon, ";"},
		{Int, "10"},
		{Equal, "=="},
		{Int, "10"},
		{Semicolon, ";"},
		{Int, "10"},
		{NotEqual, "!="},
		{Int, "9"},
		{Semicolon, ";"},
		{Ident, "foo_bar"},
		{Semicolon, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - wrong kind. expected=%q, got=%q", i, tt.expectedKind, tok.Kind)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestEOFRepeats(t *testing.T) {
	l := New("let five = 5;")
	want := []string{"let", "Ident(five)", "=", "Int(5)", "Semicolon", "EOF"}
	for i, w := range want {
		if got := l.NextToken().String(); got != w {
			t.Fatalf("token %d: got %s, want %s", i, got, w)
		}
	}
	for i := 0; i < 5; i++ {
		if tok := l.NextToken(); tok.Kind != EOF {
			t.Fatalf("pull %d after end: got %s, want EOF", i, tok)
		}
	}
}

func TestDeterministic(t *testing.T) {
	input := "let x = 1 + y * 3; return !x != -2; @ fn"
	a, b := New(input), New(input)
	for i := 0; i < 32; i++ {
		ta, tb := a.NextToken(), b.NextToken()
		if ta != tb {
			t.Fatalf("pull %d diverged: %v vs %v", i, ta, tb)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	tokens := Tokenize("let x = @;")
	kinds := []Kind{Let, Ident, Assign, Illegal, Semicolon, EOF}
	if len(tokens) != len(kinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(kinds), tokens)
	}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
	illegal := tokens[3]
	if illegal.Literal != "@" {
		t.Errorf("illegal literal: got %q, want %q", illegal.Literal, "@")
	}
	if illegal.Pos.Offset != 8 || illegal.Pos.Column != 9 {
		t.Errorf("illegal position: got %+v, want offset 8 column 9", illegal.Pos)
	}
	if illegal.String() != "ILLEGAL(@)" {
		t.Errorf("illegal display: got %s", illegal)
	}
}

func TestPositions(t *testing.T) {
	l := NewFile("main.rst", "let a = 1;\n  return a;")
	var last Token
	for tok := l.NextToken(); tok.Kind != Return; tok = l.NextToken() {
		last = tok
	}
	if last.Kind != Semicolon || last.Pos.Line != 1 || last.Pos.Column != 10 {
		t.Errorf("semicolon: got %s at %+v", last, last.Pos)
	}
	a := l.NextToken()
	if a.Pos.Line != 2 || a.Pos.Column != 10 || a.Pos.Filename != "main.rst" {
		t.Errorf("ident a: got %+v, want main.rst line 2 column 10", a.Pos)
	}
}

func TestNulByteEndsInput(t *testing.T) {
	tokens := Tokenize("x\x00y")
	if len(tokens) != 2 || tokens[0].Literal != "x" || tokens[1].Kind != EOF {
		t.Errorf("got %v, want [Ident(x) EOF]", tokens)
	}
}

func TestLookupIdent(t *testing.T) {
	tests := map[string]Kind{
		"fn":      Function,
		"let":     Let,
		"return":  Return,
		"lets":    Ident,
		"Return":  Ident,
		"_hidden": Ident,
	}
	for in, want := range tests {
		if got := LookupIdent(in); got != want {
			t.Errorf("LookupIdent(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestDefinition(t *testing.T) {
	pl, err := Definition.Lex("", strings.NewReader("let x == 5;"))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	wantTypes := []Kind{Let, Ident, Equal, Int, Semicolon, EOF}
	for i, k := range wantTypes {
		tok, err := pl.Next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Type != TokenType(k) {
			t.Errorf("token %d: got type %d, want %d", i, tok.Type, TokenType(k))
		}
	}

	symbols := Definition.Symbols()
	if symbols["Ident"] != TokenType(Ident) || symbols["EOF"] != TokenType(EOF) {
		t.Errorf("unexpected symbols: %v", symbols)
	}

	pl, _ = Definition.Lex("bad.rst", strings.NewReader("1 $"))
	if _, err := pl.Next(); err != nil {
		t.Fatalf("first token: %v", err)
	}
	_, err = pl.Next()
	perr, ok := err.(participle.Error)
	if !ok {
		t.Fatalf("expected participle.Error, got %T (%v)", err, err)
	}
	if perr.Position().Column != 3 || !strings.Contains(perr.Message(), `"$"`) {
		t.Errorf("got %v at %+v", perr.Message(), perr.Position())
	}
}

func BenchmarkTokenize(b *testing.B) {
	src := strings.Repeat("let result = 10 * five + 3 != ten / 2;\n", 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tokenize(src)
	}
}
