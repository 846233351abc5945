package lexer

import (
	"io"

	"github.com/alecthomas/participle/v2"
	plex "github.com/alecthomas/participle/v2/lexer"
)

// Definition exposes the Ristretto lexer to participle so grammars can be
// declared over the same tokens the hand-written parser consumes.
var Definition plex.Definition = &definition{}

type definition struct{}

func (d *definition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(src))
}

func (d *definition) LexString(filename string, input string) (plex.Lexer, error) {
	return &participleLexer{l: NewFile(filename, input)}, nil
}

func (d *definition) Symbols() map[string]plex.TokenType {
	symbols := map[string]plex.TokenType{}
	for k, name := range symbolNames {
		symbols[name] = TokenType(k)
	}
	symbols["EOF"] = plex.EOF
	return symbols
}

// TokenType maps a Kind onto participle's token type space.
func TokenType(k Kind) plex.TokenType {
	if k == EOF {
		return plex.EOF
	}
	return plex.TokenType(k)
}

var symbolNames = map[Kind]string{
	Illegal:     "Illegal",
	Ident:       "Ident",
	Int:         "Int",
	String:      "String",
	Assign:      "Assign",
	Bang:        "Bang",
	Plus:        "Plus",
	Minus:       "Minus",
	Slash:       "Slash",
	Asterisk:    "Asterisk",
	Equal:       "Equal",
	NotEqual:    "NotEqual",
	LessThan:    "LessThan",
	GreaterThan: "GreaterThan",
	Comma:       "Comma",
	Semicolon:   "Semicolon",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Function:    "Function",
	Let:         "Let",
	Return:      "Return",
}

type participleLexer struct {
	l *Lexer
}

func (p *participleLexer) Next() (plex.Token, error) {
	tok := p.l.NextToken()
	if tok.Kind == Illegal {
		return plex.Token{}, participle.Errorf(tok.Pos, "illegal character %q", tok.Literal)
	}
	return plex.Token{
		Type:  TokenType(tok.Kind),
		Value: tok.Literal,
		Pos:   tok.Pos,
	}, nil
}
