// Package expression implements the guard language used by translation
// alternatives.
//
// An expression compares numbers, variables and grammatical category
// literals, and combines comparisons with && and ||:
//
//	count == 0
//	count > 1 && count < 5
//	(n == CARDINALITY_FEW) || (n == CARDINALITY_MANY)
//	gender == FEMININE
//
// Compile tokenizes and parses the source once; the resulting *Expression
// holds no mutable state and may be evaluated concurrently:
//
//	expr, err := expression.Compile("count == CARDINALITY_ONE")
//	if err != nil {
//		return err
//	}
//	ok, err := expr.Evaluate(expression.Bindings{
//		"count": expression.NumberValue(plural.MustParseNumber("1"), form.CardinalOne),
//	})
//
// # Semantics
//
// Numbers compare with exact decimal semantics. Category operands support
// only == and != and compare by identity. A variable bound with
// NumberValue compares against a category literal through the form of the
// literal's kind it was bound with.
//
// Mixing && and || without parentheses is rejected. A bare operand is not a
// boolean expression.
//
// # Errors
//
// Every lexing, parsing and evaluation failure is an *EvaluationError
// carrying the offending fragment or variable and the full source. All of
// them match ErrEvaluation:
//
//	if errors.Is(err, expression.ErrEvaluation) {
//		// malformed catalog
//	}
package expression
