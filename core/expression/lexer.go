package expression

import (
	"regexp"
	"strings"
)

// lexRule is one alternative of the composite lexer pattern.
// A zero kind marks whitespace (discarded) or the catch-all error rule.
type lexRule struct {
	pattern  string
	kind     TokenKind
	catchAll bool
}

// lexRules are tried in this order; longer operators precede their prefixes.
var lexRules = func() []lexRule {
	rules := []lexRule{
		{pattern: `\s+`},
		{pattern: `\(`, kind: TokenGroupStart},
		{pattern: `\)`, kind: TokenGroupEnd},
		{pattern: `&&`, kind: TokenAnd},
		{pattern: `\|\|`, kind: TokenOr},
		{pattern: `<=`, kind: TokenLTE},
		{pattern: `>=`, kind: TokenGTE},
		{pattern: `<`, kind: TokenLT},
		{pattern: `>`, kind: TokenGT},
		{pattern: `==`, kind: TokenEQ},
		{pattern: `!=`, kind: TokenNEQ},
	}
	for _, kind := range categoryKinds {
		rules = append(rules, lexRule{pattern: regexp.QuoteMeta(fixedSymbols[kind]) + `\b`, kind: kind})
	}
	return append(rules,
		lexRule{pattern: `[-+]?[0-9]+(?:\.[0-9]+)?`, kind: TokenNumber},
		lexRule{pattern: `[A-Za-z_][A-Za-z0-9_]*`, kind: TokenVariable},
		lexRule{pattern: `(?s:.+)`, catchAll: true},
	)
}()

var lexPattern = func() *regexp.Regexp {
	parts := make([]string, len(lexRules))
	for i, r := range lexRules {
		parts[i] = "(" + r.pattern + ")"
	}
	return regexp.MustCompile(`^(?:` + strings.Join(parts, "|") + `)`)
}()

// Tokenize converts an expression into tokens in a single pass.
// Whitespace is dropped. Unrecognized input fails with an *EvaluationError.
func Tokenize(expr string) ([]Token, error) {
	var tokens []Token
	rest := expr
	for rest != "" {
		loc := lexPattern.FindStringSubmatchIndex(rest)
		// Every real token consumes input; an empty match would never advance.
		if loc == nil || loc[1] == 0 {
			return nil, fragmentError(expr, rest, "unrecognized input")
		}

		rule, text := matchedRule(rest, loc)
		switch {
		case rule.catchAll:
			msg := "unrecognized input"
			if strings.HasPrefix(text, "= ") {
				msg += ` (did you mean "=="?)`
			}
			return nil, fragmentError(expr, text, msg)
		case rule.kind != 0:
			tok, err := NewToken(rule.kind, text)
			if err != nil {
				return nil, fragmentError(expr, text, err.Error())
			}
			tokens = append(tokens, tok)
		}
		rest = rest[loc[1]:]
	}
	return tokens, nil
}

// matchedRule returns the first rule whose group participated in the match.
func matchedRule(s string, loc []int) (lexRule, string) {
	for i, r := range lexRules {
		start, end := loc[2+2*i], loc[3+2*i]
		if start >= 0 {
			return r, s[start:end]
		}
	}
	return lexRule{catchAll: true}, s
}
