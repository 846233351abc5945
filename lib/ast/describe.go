package ast

import (
	"fmt"
	"io"
	"strings"
)

// Description is a structural view of a node, suitable for JSON and YAML
// dumps where the interface-typed fields of the tree would otherwise lose
// their concrete type.
type Description struct {
	Node       string        `json:"node" yaml:"node"`
	Value      string        `json:"value,omitempty" yaml:"value,omitempty"`
	Operator   string        `json:"operator,omitempty" yaml:"operator,omitempty"`
	Precedence string        `json:"precedence,omitempty" yaml:"precedence,omitempty"`
	Position   string        `json:"position,omitempty" yaml:"position,omitempty"`
	Children   []Description `json:"children,omitempty" yaml:"children,omitempty"`
}

func Describe(node Node) Description {
	switch n := node.(type) {
	case *Program:
		d := Description{Node: "Program"}
		for _, s := range n.Statements {
			d.Children = append(d.Children, Describe(s))
		}
		return d
	case *LetStatement:
		return Description{
			Node:     "Let",
			Position: n.Token.Pos.String(),
			Children: []Description{Describe(n.Name), Describe(n.Value)},
		}
	case *ReturnStatement:
		return Description{
			Node:     "Return",
			Position: n.Token.Pos.String(),
			Children: []Description{Describe(n.ReturnValue)},
		}
	case *ExpressionStatement:
		return Description{
			Node:     "Expression",
			Position: n.Token.Pos.String(),
			Children: []Description{Describe(n.Expression)},
		}
	case *Identifier:
		return Description{Node: "Identifier", Value: n.Value, Position: n.Token.Pos.String()}
	case *IntegerLiteral:
		return Description{Node: "Literal", Value: n.Value, Position: n.Token.Pos.String()}
	case *PrefixExpression:
		return Description{
			Node:       "Prefix",
			Operator:   n.Operator,
			Precedence: Prefix.String(),
			Position:   n.Token.Pos.String(),
			Children:   []Description{Describe(n.Right)},
		}
	case *InfixExpression:
		return Description{
			Node:       "Infix",
			Operator:   n.Operator,
			Precedence: n.Precedence.String(),
			Position:   n.Token.Pos.String(),
			Children:   []Description{Describe(n.Left), Describe(n.Right)},
		}
	}
	return Description{Node: fmt.Sprintf("%T", node)}
}

// Fprint writes node as an indented tree, one node per line.
func Fprint(w io.Writer, node Node) error {
	return fprint(w, Describe(node), 0)
}

func fprint(w io.Writer, d Description, depth int) error {
	line := strings.Repeat("  ", depth) + d.Node
	switch {
	case d.Operator != "":
		line += " " + d.Operator + " (" + d.Precedence + ")"
	case d.Value != "":
		line += " " + d.Value
	}
	if d.Position != "" {
		line += " @" + d.Position
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range d.Children {
		if err := fprint(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
