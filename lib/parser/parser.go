// Package parser builds the AST for a Ristretto program.
//
// A Parser is created with New over a lexer and used once, by calling
// ParseProgram. Parsing never stops at the first problem: every failed
// statement leaves one diagnostic behind and the parser carries on with the
// next statement, so callers must check Errors (or Err) in addition to
// inspecting the returned program.
package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/vyPal/Ristretto/lib/ast"
	"github.com/vyPal/Ristretto/lib/lexer"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Option configures a Parser.
type Option func(*Parser)

// WithMaxErrors stops parsing once n diagnostics have been collected. Zero
// means no limit.
func WithMaxErrors(n int) Option {
	return func(p *Parser) {
		p.maxErrors = n
	}
}

// WithFilename overrides the filename recorded in token positions, and so in
// every diagnostic.
func WithFilename(name string) Option {
	return func(p *Parser) {
		p.filename = name
	}
}

type Parser struct {
	l        *lexer.Lexer
	filename string

	curToken  lexer.Token
	peekToken lexer.Token

	errors    []participle.Error
	maxErrors int

	prefixParseFns map[lexer.Kind]prefixParseFn
	infixParseFns  map[lexer.Kind]infixParseFn
}

func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:              l,
		prefixParseFns: make(map[lexer.Kind]prefixParseFn),
		infixParseFns:  make(map[lexer.Kind]infixParseFn),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.registerPrefix(lexer.Ident, p.parseIdentifier)
	p.registerPrefix(lexer.Int, p.parseIntegerLiteral)
	p.registerPrefix(lexer.Bang, p.parsePrefixExpression)
	p.registerPrefix(lexer.Minus, p.parsePrefixExpression)

	for kind := range precedences {
		p.registerInfix(kind, p.parseInfixExpression)
	}

	// fill curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(kind lexer.Kind, fn prefixParseFn) {
	p.prefixParseFns[kind] = fn
}

func (p *Parser) registerInfix(kind lexer.Kind, fn infixParseFn) {
	p.infixParseFns[kind] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	if p.filename != "" {
		p.peekToken.Pos.Filename = p.filename
	}
}

// ParseProgram parses statements until the end of input. It always returns a
// program; statements that failed to parse are left out of it.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(lexer.EOF) && !p.errorLimitReached() {
		before := len(p.errors)
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else if len(p.errors) > before {
			p.synchronize()
		}
		p.nextToken()
	}

	return program
}

// Errors returns the diagnostics collected so far, in source order.
func (p *Parser) Errors() []string {
	msgs := make([]string, len(p.errors))
	for i, err := range p.errors {
		msgs[i] = err.Error()
	}
	return msgs
}

// Diagnostics returns the collected diagnostics with their positions.
func (p *Parser) Diagnostics() []participle.Error {
	return append([]participle.Error(nil), p.errors...)
}

// Err returns the diagnostics as an ErrorList, or nil when there are none.
func (p *Parser) Err() error {
	if len(p.errors) == 0 {
		return nil
	}
	return ErrorList(p.Diagnostics())
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case lexer.Let:
		return p.parseLetStatement()
	case lexer.Return:
		return p.parseReturnStatement()
	case lexer.Semicolon:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(lexer.Ident) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.Assign) {
		return nil
	}
	p.nextToken()

	if stmt.Value = p.parseExpression(ast.Lowest); stmt.Value == nil {
		return nil
	}
	if !p.expectTerminator() {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()

	if stmt.ReturnValue = p.parseExpression(ast.Lowest); stmt.ReturnValue == nil {
		return nil
	}
	if !p.expectTerminator() {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	if stmt.Expression = p.parseExpression(ast.Lowest); stmt.Expression == nil {
		return nil
	}
	if !p.expectTerminator() {
		return nil
	}
	return stmt
}

// synchronize skips the rest of a failed statement so that the next loop
// iteration starts after its terminator.
func (p *Parser) synchronize() {
	for !p.curTokenIs(lexer.Semicolon) && !p.curTokenIs(lexer.EOF) {
		p.nextToken()
	}
}

func (p *Parser) curTokenIs(k lexer.Kind) bool {
	return p.curToken.Kind == k
}

func (p *Parser) peekTokenIs(k lexer.Kind) bool {
	return p.peekToken.Kind == k
}

// expectPeek advances if the next token is of kind k and records an error
// otherwise.
func (p *Parser) expectPeek(k lexer.Kind) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.peekError(k)
	return false
}

// expectTerminator consumes the ';' closing a statement. The last statement
// of the input may end at EOF instead.
func (p *Parser) expectTerminator() bool {
	if p.peekTokenIs(lexer.Semicolon) {
		p.nextToken()
		return true
	}
	if p.peekTokenIs(lexer.EOF) {
		return true
	}
	p.peekError(lexer.Semicolon)
	return false
}

func (p *Parser) peekError(k lexer.Kind) {
	if p.peekTokenIs(lexer.Illegal) {
		p.illegalTokenError(p.peekToken)
		return
	}
	p.addError(p.peekToken.Pos, "expected next token to be %s, got %s", describeKind(k), p.peekToken)
}

func (p *Parser) illegalTokenError(tok lexer.Token) {
	p.addError(tok.Pos, "illegal character %q", tok.Literal)
}

func (p *Parser) noPrefixParseFnError(tok lexer.Token) {
	if tok.Kind == lexer.Illegal {
		p.illegalTokenError(tok)
		return
	}
	p.addError(tok.Pos, "no prefix parse function for %s found", tok)
}

func (p *Parser) addError(pos lexer.Position, format string, args ...interface{}) {
	if p.errorLimitReached() {
		return
	}
	p.errors = append(p.errors, participle.Errorf(pos, format, args...))
}

func (p *Parser) errorLimitReached() bool {
	return p.maxErrors > 0 && len(p.errors) >= p.maxErrors
}

func describeKind(k lexer.Kind) string {
	switch k {
	case lexer.Ident:
		return "IDENT"
	case lexer.Int:
		return "INT"
	case lexer.Semicolon:
		return "Semicolon"
	}
	return fmt.Sprintf("'%s'", k)
}
