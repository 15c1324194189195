package expression

import (
	"github.com/dmitrymomot/lingo/core/form"
	"github.com/dmitrymomot/lingo/core/plural"
)

// Node is an expression tree node. Trees are immutable once parsed.
type Node interface {
	String() string
	node()
}

// Literal is a decimal number literal.
type Literal struct {
	Value plural.Number
}

// CategoryLiteral is one of the grammatical category keywords.
type CategoryLiteral struct {
	Form form.Form
}

// Variable references a binding by name.
type Variable struct {
	Name string
}

// Comparison applies a comparison operator to two operands.
type Comparison struct {
	Op    TokenKind
	Left  Node
	Right Node
}

// Logical combines two boolean nodes with && or ||.
type Logical struct {
	Op    TokenKind
	Left  Node
	Right Node
}

// Group is a parenthesized boolean expression.
type Group struct {
	Inner Node
}

func (Literal) node()         {}
func (CategoryLiteral) node() {}
func (Variable) node()        {}
func (Comparison) node()      {}
func (Logical) node()         {}
func (Group) node()           {}

func (n Literal) String() string         { return n.Value.String() }
func (n CategoryLiteral) String() string { return n.Form.Name() }
func (n Variable) String() string        { return n.Name }

func (n Comparison) String() string {
	op, _ := n.Op.Symbol()
	return n.Left.String() + " " + op + " " + n.Right.String()
}

func (n Logical) String() string {
	op, _ := n.Op.Symbol()
	return n.Left.String() + " " + op + " " + n.Right.String()
}

func (n Group) String() string { return "(" + n.Inner.String() + ")" }
