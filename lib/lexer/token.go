package lexer

import (
	plex "github.com/alecthomas/participle/v2/lexer"
)

// Kind is the lexical category of a token.
type Kind uint8

const (
	EOF Kind = iota
	Illegal

	Ident
	Int
	String // reserved, never produced by the lexer

	Assign      // =
	Bang        // !
	Plus        // +
	Minus       // -
	Slash       // /
	Asterisk    // *
	Equal       // ==
	NotEqual    // !=
	LessThan    // <
	GreaterThan // >

	Comma     // ,
	Semicolon // ;
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }

	Function
	Let
	Return
)

var kindNames = [...]string{
	EOF:         "EOF",
	Illegal:     "ILLEGAL",
	Ident:       "IDENT",
	Int:         "INT",
	String:      "STRING",
	Assign:      "=",
	Bang:        "!",
	Plus:        "+",
	Minus:       "-",
	Slash:       "/",
	Asterisk:    "*",
	Equal:       "==",
	NotEqual:    "!=",
	LessThan:    "<",
	GreaterThan: ">",
	Comma:       ",",
	Semicolon:   ";",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	Function:    "FUNCTION",
	Let:         "LET",
	Return:      "RETURN",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Position is where a token starts in the source.
type Position = plex.Position

// Token is a single lexical unit. Literal holds the exact source text.
type Token struct {
	Kind    Kind
	Literal string
	Pos     Position
}

// String renders the token the way diagnostics and the REPL show it.
func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return "Ident(" + t.Literal + ")"
	case Int:
		return "Int(" + t.Literal + ")"
	case String:
		return "String(" + t.Literal + ")"
	case Illegal:
		return "ILLEGAL(" + t.Literal + ")"
	case EOF:
		return "EOF"
	case Semicolon:
		return "Semicolon"
	case Function:
		return "function"
	case Let:
		return "let"
	case Return:
		return "return"
	}
	return t.Kind.String()
}

var keywords = map[string]Kind{
	"fn":     Function,
	"let":    Let,
	"return": Return,
}

// LookupIdent classifies identifier text against the keyword set.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}
