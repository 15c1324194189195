package plural

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when a value cannot be read as a decimal number.
var ErrInvalidNumber = errors.New("invalid decimal number")

// maxOperandDigits keeps operand arithmetic inside int64.
const maxOperandDigits = 17

// Number is an exact decimal value as written, for example "1.50".
// Trailing fraction zeros are significant: they change the v and f operands.
type Number struct {
	negative bool
	integer  string // digits without leading zeros, "0" for zero
	fraction string // fraction digits as written, may be empty
}

// ParseNumber parses a signed decimal such as "-12", "3.5" or "+1.00".
func ParseNumber(s string) (Number, error) {
	raw := strings.TrimSpace(s)
	str := raw
	var n Number
	switch {
	case strings.HasPrefix(str, "-"):
		n.negative = true
		str = str[1:]
	case strings.HasPrefix(str, "+"):
		str = str[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(str, ".")
	if intPart == "" || (hasDot && fracPart == "") || !isDigits(intPart) || !isDigits(fracPart) {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}

	n.integer = strings.TrimLeft(intPart, "0")
	if n.integer == "" {
		n.integer = "0"
	}
	n.fraction = fracPart
	if n.IsZero() {
		n.negative = false
	}
	return n, nil
}

// MustParseNumber is like ParseNumber but panics on error.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

// NumberOf converts a Go numeric value into a Number.
// Supported: all integer kinds, float32/float64 (shortest exact representation),
// decimal strings, Number and *Number.
func NumberOf(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		return x, nil
	case *Number:
		if x == nil {
			return Number{}, fmt.Errorf("%w: nil", ErrInvalidNumber)
		}
		return *x, nil
	case int:
		return ParseNumber(strconv.FormatInt(int64(x), 10))
	case int8:
		return ParseNumber(strconv.FormatInt(int64(x), 10))
	case int16:
		return ParseNumber(strconv.FormatInt(int64(x), 10))
	case int32:
		return ParseNumber(strconv.FormatInt(int64(x), 10))
	case int64:
		return ParseNumber(strconv.FormatInt(x, 10))
	case uint:
		return ParseNumber(strconv.FormatUint(uint64(x), 10))
	case uint8:
		return ParseNumber(strconv.FormatUint(uint64(x), 10))
	case uint16:
		return ParseNumber(strconv.FormatUint(uint64(x), 10))
	case uint32:
		return ParseNumber(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return ParseNumber(strconv.FormatUint(x, 10))
	case float32:
		return floatNumber(float64(x), 32)
	case float64:
		return floatNumber(x, 64)
	case string:
		return ParseNumber(x)
	default:
		return Number{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidNumber, v)
	}
}

func floatNumber(f float64, bitSize int) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("%w: %v", ErrInvalidNumber, f)
	}
	return ParseNumber(strconv.FormatFloat(f, 'f', -1, bitSize))
}

// IsZero reports whether the number equals zero.
func (n Number) IsZero() bool {
	return n.integer == "0" && strings.Trim(n.fraction, "0") == ""
}

// IsNegative reports whether the number is below zero.
func (n Number) IsNegative() bool { return n.negative }

// String returns the number as written, normalized for leading zeros.
func (n Number) String() string {
	if n.integer == "" {
		return "0"
	}
	var b strings.Builder
	if n.negative {
		b.WriteByte('-')
	}
	b.WriteString(n.integer)
	if n.fraction != "" {
		b.WriteByte('.')
		b.WriteString(n.fraction)
	}
	return b.String()
}

// Rat returns the exact rational value of the number.
func (n Number) Rat() *big.Rat {
	r, ok := new(big.Rat).SetString(n.String())
	if !ok {
		return new(big.Rat)
	}
	return r
}

// Cmp compares n and m numerically: -1 if n < m, 0 if equal, +1 if n > m.
// "1" and "1.0" compare equal.
func (n Number) Cmp(m Number) int {
	return n.Rat().Cmp(m.Rat())
}

// Operands returns the CLDR plural operands of the absolute value.
func (n Number) Operands() Operands {
	integer := n.integer
	if integer == "" {
		integer = "0"
	}
	trimmed := strings.TrimRight(n.fraction, "0")
	return Operands{
		I: digitsValue(integer),
		V: int64(len(n.fraction)),
		W: int64(len(trimmed)),
		F: digitsValue(n.fraction),
		T: digitsValue(trimmed),
	}
}

// digitsValue converts a digit string into int64. Numbers with more digits than fit
// keep their trailing digits offset by 10^17, which preserves every modulus used by
// plural rules while staying distinct from any small integer.
func digitsValue(s string) int64 {
	if s == "" {
		return 0
	}
	if len(s) > maxOperandDigits {
		tail, _ := strconv.ParseInt(s[len(s)-maxOperandDigits:], 10, 64)
		return int64(math.Pow10(maxOperandDigits)) + tail
	}
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
