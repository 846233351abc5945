// Package analyzer checks name resolution over a parsed program.
package analyzer

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/vyPal/Ristretto/lib/ast"
)

type analyzer struct {
	ctx    *Context
	errors []participle.Error
}

// Analyze reports every identifier that is read before a let statement binds
// it. Statements are visited in source order and a let's value is checked
// before its name is bound, so `let x = x;` reads the previous x.
func Analyze(program *ast.Program) []participle.Error {
	a := &analyzer{ctx: NewContext()}
	for _, stmt := range program.Statements {
		a.statement(stmt)
	}
	return a.errors
}

func (a *analyzer) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		a.expression(s.Value)
		a.ctx.Define(s.Name)
	case *ast.ReturnStatement:
		a.expression(s.ReturnValue)
	case *ast.ExpressionStatement:
		a.expression(s.Expression)
	default:
		panic(fmt.Sprintf("Unknown statement: %T", stmt))
	}
}

func (a *analyzer) expression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if _, ok := a.ctx.LookupVariable(e.Value); !ok {
			a.errors = append(a.errors, participle.Errorf(e.Token.Pos, "undefined identifier: %s", e.Value))
		}
	case *ast.IntegerLiteral:
	case *ast.PrefixExpression:
		a.expression(e.Right)
	case *ast.InfixExpression:
		a.expression(e.Left)
		a.expression(e.Right)
	default:
		panic(fmt.Sprintf("Unknown expression: %T", expr))
	}
}
