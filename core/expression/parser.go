package expression

import (
	"strings"

	"github.com/dmitrymomot/lingo/core/plural"
)

// Parse builds an expression tree from a token stream.
// The source used in error messages is reconstructed from token symbols.
func Parse(tokens []Token) (Node, error) {
	symbols := make([]string, len(tokens))
	for i, t := range tokens {
		symbols[i] = t.Symbol
	}
	return parse(strings.Join(symbols, " "), tokens)
}

func parse(src string, tokens []Token) (Node, error) {
	p := &parser{src: src, tokens: tokens}
	if len(tokens) == 0 {
		return nil, fragmentError(src, "", "empty expression")
	}

	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t, ok := p.peek(); ok {
		if t.Kind == TokenGroupEnd {
			return nil, fragmentError(src, t.Symbol, "unbalanced parenthesis")
		}
		return nil, fragmentError(src, p.rest(), "unexpected trailing tokens")
	}
	return root, nil
}

type parser struct {
	src    string
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// rest renders the unconsumed tokens for diagnostics.
func (p *parser) rest() string {
	parts := make([]string, 0, len(p.tokens)-p.pos)
	for _, t := range p.tokens[p.pos:] {
		parts = append(parts, t.Symbol)
	}
	return strings.Join(parts, " ")
}

// expr := term (("&&" | "||") term)*
// Mixing && and || at one level requires parentheses.
func (p *parser) expr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	var op TokenKind
	for {
		t, ok := p.peek()
		if !ok || !t.Kind.IsLogical() {
			return left, nil
		}
		if op != 0 && t.Kind != op {
			return nil, fragmentError(p.src, p.rest(), "mixed && and || must be grouped with parentheses")
		}
		op = t.Kind
		p.pos++

		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = Logical{Op: op, Left: left, Right: right}
	}
}

// term := "(" expr ")" | operand comparison operand
func (p *parser) term() (Node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fragmentError(p.src, "", "missing operand at end of expression")
	}

	if t.Kind == TokenGroupStart {
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.next()
		if !ok || closing.Kind != TokenGroupEnd {
			return nil, fragmentError(p.src, "(", "unbalanced parenthesis")
		}
		if after, ok := p.peek(); ok && after.Kind.IsComparison() {
			return nil, fragmentError(p.src, after.Symbol, "comparison applied to an operator result")
		}
		return Group{Inner: inner}, nil
	}

	left, err := p.operand()
	if err != nil {
		return nil, err
	}
	opTok, ok := p.next()
	if !ok {
		return nil, fragmentError(p.src, left.String(), "operand is not a boolean expression")
	}
	if !opTok.Kind.IsComparison() {
		return nil, fragmentError(p.src, opTok.Symbol, "expected comparison operator")
	}
	right, err := p.operand()
	if err != nil {
		return nil, err
	}
	if after, ok := p.peek(); ok && after.Kind.IsComparison() {
		return nil, fragmentError(p.src, after.Symbol, "comparison applied to an operator result")
	}
	return Comparison{Op: opTok.Kind, Left: left, Right: right}, nil
}

// operand := number | category | variable
func (p *parser) operand() (Node, error) {
	t, ok := p.next()
	if !ok {
		return nil, fragmentError(p.src, "", "missing operand at end of expression")
	}

	switch {
	case t.Kind == TokenNumber:
		n, err := plural.ParseNumber(t.Symbol)
		if err != nil {
			return nil, fragmentError(p.src, t.Symbol, "invalid number")
		}
		return Literal{Value: n}, nil
	case t.Kind == TokenVariable:
		return Variable{Name: t.Symbol}, nil
	case t.Kind.IsCategory():
		return CategoryLiteral{Form: categoryTokens[t.Kind]}, nil
	default:
		return nil, fragmentError(p.src, t.Symbol, "missing operand")
	}
}
