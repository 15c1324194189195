package expression

import (
	"errors"
	"strings"
)

var (
	// ErrEvaluation is the sentinel matched by every EvaluationError.
	ErrEvaluation = errors.New("expression evaluation failed")

	// ErrSymbolMismatch indicates a token was built with a symbol its kind does not allow.
	ErrSymbolMismatch = errors.New("token symbol does not match its kind")
)

// EvaluationError reports a lexing, parsing or evaluation failure.
// It carries the full expression source for diagnostics.
type EvaluationError struct {
	Expression string // full source expression
	Fragment   string // offending fragment, if any
	Variable   string // offending variable name, if any
	Message    string
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Fragment != "" {
		b.WriteString(" at \"")
		b.WriteString(e.Fragment)
		b.WriteString("\"")
	}
	if e.Variable != "" {
		b.WriteString(" (variable \"")
		b.WriteString(e.Variable)
		b.WriteString("\")")
	}
	b.WriteString(" in expression \"")
	b.WriteString(e.Expression)
	b.WriteString("\"")
	return b.String()
}

// Is makes errors.Is(err, ErrEvaluation) match.
func (e *EvaluationError) Is(target error) bool {
	return target == ErrEvaluation
}

func fragmentError(expr, fragment, msg string) error {
	return &EvaluationError{Expression: expr, Fragment: fragment, Message: msg}
}

func variableError(expr, variable, msg string) error {
	return &EvaluationError{Expression: expr, Variable: variable, Message: msg}
}
