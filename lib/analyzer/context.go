package analyzer

import (
	"github.com/vyPal/Ristretto/lib/ast"
	"github.com/vyPal/Ristretto/lib/lexer"
)

type Context struct {
	Variables map[string]Variable
}

type Variable struct {
	Name string
	Pos  lexer.Position
}

func NewContext() *Context {
	return &Context{
		Variables: make(map[string]Variable),
	}
}

// Define binds ident, replacing any earlier binding of the same name.
func (c *Context) Define(ident *ast.Identifier) {
	c.Variables[ident.Value] = Variable{
		Name: ident.Value,
		Pos:  ident.Token.Pos,
	}
}

func (c *Context) LookupVariable(name string) (Variable, bool) {
	v, ok := c.Variables[name]
	return v, ok
}
