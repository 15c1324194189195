package expression

import (
	"github.com/dmitrymomot/lingo/core/form"
	"github.com/dmitrymomot/lingo/core/plural"
)

// Value is a variable binding: a number, a set of pre-computed forms, or both.
// A numeric placeholder is usually bound together with its cardinal and
// ordinal categories so expressions may test either domain.
type Value struct {
	number *plural.Number
	forms  []form.Form
}

// NumberValue binds a number along with the forms derived from it.
func NumberValue(n plural.Number, forms ...form.Form) Value {
	return Value{number: &n, forms: forms}
}

// FormValue binds a grammatical form with no numeric value.
func FormValue(f form.Form) Value {
	return Value{forms: []form.Form{f}}
}

// Number returns the numeric value, if any.
func (v Value) Number() (plural.Number, bool) {
	if v.number == nil {
		return plural.Number{}, false
	}
	return *v.number, true
}

// Form returns the bound form of the given kind, if any.
func (v Value) Form(kind form.Kind) (form.Form, bool) {
	for _, f := range v.forms {
		if f.Kind() == kind {
			return f, true
		}
	}
	return nil, false
}

// Bindings maps variable names to values.
type Bindings map[string]Value

// Expression is a compiled boolean expression. Safe for concurrent use.
type Expression struct {
	source string
	root   Node
}

// Compile tokenizes and parses an expression.
func Compile(src string) (*Expression, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	root, err := parse(src, tokens)
	if err != nil {
		return nil, err
	}
	return &Expression{source: src, root: root}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Expression {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return e
}

// Source returns the original expression text.
func (e *Expression) Source() string { return e.source }

// Root returns the parsed tree.
func (e *Expression) Root() Node { return e.root }

func (e *Expression) String() string { return e.source }

// Evaluate evaluates the expression against the bindings.
func (e *Expression) Evaluate(b Bindings) (bool, error) {
	return Evaluate(e.source, e.root, b)
}

// Evaluate evaluates a tree; src is used for error messages only.
func Evaluate(src string, root Node, b Bindings) (bool, error) {
	ev := evaluator{src: src, bindings: b}
	return ev.boolean(root)
}

type evaluator struct {
	src      string
	bindings Bindings
}

func (ev evaluator) boolean(n Node) (bool, error) {
	switch n := n.(type) {
	case Group:
		return ev.boolean(n.Inner)
	case Logical:
		left, err := ev.boolean(n.Left)
		if err != nil {
			return false, err
		}
		if n.Op == TokenAnd && !left {
			return false, nil
		}
		if n.Op == TokenOr && left {
			return true, nil
		}
		return ev.boolean(n.Right)
	case Comparison:
		return ev.compare(n)
	default:
		return false, fragmentError(ev.src, n.String(), "operand is not a boolean expression")
	}
}

// operand is a resolved comparison side.
type operand struct {
	label  string
	number *plural.Number
	form   form.Form
	value  *Value // set for variables; forms resolved lazily against the other side
}

func (ev evaluator) resolve(n Node) (operand, error) {
	switch n := n.(type) {
	case Literal:
		v := n.Value
		return operand{label: n.String(), number: &v}, nil
	case CategoryLiteral:
		return operand{label: n.String(), form: n.Form}, nil
	case Variable:
		v, ok := ev.bindings[n.Name]
		if !ok {
			return operand{}, variableError(ev.src, n.Name, "unbound variable")
		}
		return operand{label: n.Name, number: v.number, value: &v}, nil
	default:
		return operand{}, fragmentError(ev.src, n.String(), "comparison applied to an operator result")
	}
}

func (ev evaluator) compare(c Comparison) (bool, error) {
	left, err := ev.resolve(c.Left)
	if err != nil {
		return false, err
	}
	right, err := ev.resolve(c.Right)
	if err != nil {
		return false, err
	}

	// Category literal against a variable: use the variable's form of that kind.
	switch {
	case left.form != nil && right.value != nil:
		return ev.compareForms(c, left.form, ev.formOf(right, left.form.Kind()), right)
	case right.form != nil && left.value != nil:
		return ev.compareForms(c, ev.formOf(left, right.form.Kind()), right.form, left)
	case left.form != nil && right.form != nil:
		return ev.compareForms(c, left.form, right.form, operand{})
	}

	if left.number != nil && right.number != nil {
		return compareNumbers(c.Op, left.number.Cmp(*right.number)), nil
	}

	// Two form-only variables.
	if left.value != nil && right.value != nil && left.number == nil && right.number == nil {
		for _, lf := range left.value.forms {
			if rf, ok := right.value.Form(lf.Kind()); ok {
				return ev.compareForms(c, lf, rf, operand{})
			}
		}
	}

	return false, ev.mismatch(c, left, right)
}

func (ev evaluator) formOf(o operand, kind form.Kind) form.Form {
	if o.value == nil {
		return nil
	}
	f, _ := o.value.Form(kind)
	return f
}

func (ev evaluator) compareForms(c Comparison, a, b form.Form, variable operand) (bool, error) {
	if a == nil || b == nil {
		if variable.value != nil {
			return false, variableError(ev.src, variable.label, "variable has no grammatical category to compare")
		}
		return false, fragmentError(ev.src, c.String(), "operands are not comparable")
	}
	switch c.Op {
	case TokenEQ:
		return a == b, nil
	case TokenNEQ:
		return a != b, nil
	default:
		op, _ := c.Op.Symbol()
		return false, fragmentError(ev.src, c.String(), "operator "+op+" is not defined for grammatical categories")
	}
}

func (ev evaluator) mismatch(c Comparison, left, right operand) error {
	for _, o := range []operand{left, right} {
		if o.value != nil && o.number == nil {
			return variableError(ev.src, o.label, "variable is not numeric")
		}
	}
	return fragmentError(ev.src, c.String(), "operands are not comparable")
}

func compareNumbers(op TokenKind, cmp int) bool {
	switch op {
	case TokenLT:
		return cmp < 0
	case TokenLTE:
		return cmp <= 0
	case TokenGT:
		return cmp > 0
	case TokenGTE:
		return cmp >= 0
	case TokenEQ:
		return cmp == 0
	case TokenNEQ:
		return cmp != 0
	}
	return false
}
