package grammar

import "strings"

// The String methods render the same fully parenthesized form as the ast
// package, so both parsers can be compared on their output.

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
	}
	return sb.String()
}

func (s *Statement) String() string {
	switch {
	case s.Let != nil:
		return "let " + s.Let.Name + " = " + s.Let.Value.String() + ";"
	case s.Return != nil:
		return "return " + s.Return.Value.String() + ";"
	case s.Expression != nil:
		return s.Expression.String() + ";"
	}
	return ""
}

func (e *Expression) String() string {
	return e.Equality.String()
}

func binary(left, op, right string) string {
	return "(" + left + " " + op + " " + right + ")"
}

func (e *Equality) String() string {
	out := e.Left.String()
	for _, r := range e.Right {
		out = binary(out, r.Op, r.Right.String())
	}
	return out
}

func (c *Comparison) String() string {
	out := c.Left.String()
	for _, r := range c.Right {
		out = binary(out, r.Op, r.Right.String())
	}
	return out
}

func (s *Sum) String() string {
	out := s.Left.String()
	for _, r := range s.Right {
		out = binary(out, r.Op, r.Right.String())
	}
	return out
}

func (p *Product) String() string {
	out := p.Left.String()
	for _, r := range p.Right {
		out = binary(out, r.Op, r.Right.String())
	}
	return out
}

func (u *Unary) String() string {
	if u.Primary != nil {
		return u.Primary.String()
	}
	return "(" + u.Op + u.Operand.String() + ")"
}

func (p *Primary) String() string {
	if p.Ident != nil {
		return *p.Ident
	}
	if p.Int != nil {
		return *p.Int
	}
	return ""
}
