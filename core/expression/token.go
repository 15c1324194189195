package expression

import (
	"fmt"

	"github.com/dmitrymomot/lingo/core/form"
)

// TokenKind is the closed set of token kinds of the expression language.
type TokenKind int

// Token kinds
const (
	TokenGroupStart TokenKind = iota + 1 // (
	TokenGroupEnd                        // )

	TokenAnd // &&
	TokenOr  // ||

	// Comparison operators
	TokenLT  // <
	TokenLTE // <=
	TokenGT  // >
	TokenGTE // >=
	TokenEQ  // ==
	TokenNEQ // !=

	// Category literals
	TokenCardinalityZero
	TokenCardinalityOne
	TokenCardinalityTwo
	TokenCardinalityFew
	TokenCardinalityMany
	TokenCardinalityOther
	TokenOrdinalityZero
	TokenOrdinalityOne
	TokenOrdinalityTwo
	TokenOrdinalityFew
	TokenOrdinalityMany
	TokenOrdinalityOther
	TokenMasculine
	TokenFeminine
	TokenNeuter

	// Variable symbols
	TokenNumber
	TokenVariable
)

// categoryTokens maps category literal kinds to their forms.
var categoryTokens = map[TokenKind]form.Form{
	TokenCardinalityZero:  form.CardinalZero,
	TokenCardinalityOne:   form.CardinalOne,
	TokenCardinalityTwo:   form.CardinalTwo,
	TokenCardinalityFew:   form.CardinalFew,
	TokenCardinalityMany:  form.CardinalMany,
	TokenCardinalityOther: form.CardinalOther,
	TokenOrdinalityZero:   form.OrdinalZero,
	TokenOrdinalityOne:    form.OrdinalOne,
	TokenOrdinalityTwo:    form.OrdinalTwo,
	TokenOrdinalityFew:    form.OrdinalFew,
	TokenOrdinalityMany:   form.OrdinalMany,
	TokenOrdinalityOther:  form.OrdinalOther,
	TokenMasculine:        form.Masculine,
	TokenFeminine:         form.Feminine,
	TokenNeuter:           form.Neuter,
}

// categoryKinds lists category literal kinds in lexer priority order.
var categoryKinds = []TokenKind{
	TokenCardinalityZero, TokenCardinalityOne, TokenCardinalityTwo,
	TokenCardinalityFew, TokenCardinalityMany, TokenCardinalityOther,
	TokenOrdinalityZero, TokenOrdinalityOne, TokenOrdinalityTwo,
	TokenOrdinalityFew, TokenOrdinalityMany, TokenOrdinalityOther,
	TokenMasculine, TokenFeminine, TokenNeuter,
}

// fixedSymbols holds the only symbol a fixed-symbol kind may carry.
// Category keywords are spelled like their form names.
var fixedSymbols = func() map[TokenKind]string {
	m := map[TokenKind]string{
		TokenGroupStart: "(",
		TokenGroupEnd:   ")",
		TokenAnd:        "&&",
		TokenOr:         "||",
		TokenLT:         "<",
		TokenLTE:        "<=",
		TokenGT:         ">",
		TokenGTE:        ">=",
		TokenEQ:         "==",
		TokenNEQ:        "!=",
	}
	for kind, f := range categoryTokens {
		m[kind] = f.Name()
	}
	return m
}()

// Symbol returns the fixed symbol of the kind and whether the kind has one.
func (k TokenKind) Symbol() (string, bool) {
	s, ok := fixedSymbols[k]
	return s, ok
}

// IsComparison reports whether the kind is a comparison operator.
func (k TokenKind) IsComparison() bool {
	return k >= TokenLT && k <= TokenNEQ
}

// IsLogical reports whether the kind is && or ||.
func (k TokenKind) IsLogical() bool {
	return k == TokenAnd || k == TokenOr
}

// IsCategory reports whether the kind is a grammatical category literal.
func (k TokenKind) IsCategory() bool {
	_, ok := categoryTokens[k]
	return ok
}

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "NUMBER"
	case TokenVariable:
		return "VARIABLE"
	case TokenGroupStart:
		return "GROUP_START"
	case TokenGroupEnd:
		return "GROUP_END"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenLT:
		return "LT"
	case TokenLTE:
		return "LTE"
	case TokenGT:
		return "GT"
	case TokenGTE:
		return "GTE"
	case TokenEQ:
		return "EQ"
	case TokenNEQ:
		return "NEQ"
	}
	if f, ok := categoryTokens[k]; ok {
		return f.Name()
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a lexical token of the expression language.
type Token struct {
	Kind   TokenKind
	Symbol string
}

// NewToken creates a token. Kinds with a fixed symbol only accept that symbol.
func NewToken(kind TokenKind, symbol string) (Token, error) {
	if fixed, ok := fixedSymbols[kind]; ok {
		if symbol != fixed {
			return Token{}, fmt.Errorf("%w: %s requires %q, got %q", ErrSymbolMismatch, kind, fixed, symbol)
		}
		return Token{Kind: kind, Symbol: symbol}, nil
	}
	if kind != TokenNumber && kind != TokenVariable {
		return Token{}, fmt.Errorf("%w: unknown token kind %d", ErrSymbolMismatch, int(kind))
	}
	if symbol == "" {
		return Token{}, fmt.Errorf("%w: %s requires a symbol", ErrSymbolMismatch, kind)
	}
	return Token{Kind: kind, Symbol: symbol}, nil
}

func (t Token) String() string {
	if t.Kind == TokenNumber || t.Kind == TokenVariable {
		return fmt.Sprintf("%s(%s)", t.Kind, t.Symbol)
	}
	return t.Kind.String()
}
