package plural_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/plural"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ops      plural.Operands
	}{
		{"0", "0", plural.Operands{}},
		{"1", "1", plural.Operands{I: 1}},
		{"-1", "-1", plural.Operands{I: 1}},
		{"+7", "7", plural.Operands{I: 7}},
		{"007", "7", plural.Operands{I: 7}},
		{"1.0", "1.0", plural.Operands{I: 1, V: 1}},
		{"1.50", "1.50", plural.Operands{I: 1, V: 2, W: 1, F: 50, T: 5}},
		{"0.01", "0.01", plural.Operands{V: 2, W: 2, F: 1, T: 1}},
		{"123.456", "123.456", plural.Operands{I: 123, V: 3, W: 3, F: 456, T: 456}},
		{"-0", "0", plural.Operands{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := plural.ParseNumber(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.String())
			assert.Equal(t, tt.ops, n.Operands())
		})
	}

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "-", "1.", ".5", "1e3", "abc", "1.2.3", "--1"} {
			_, err := plural.ParseNumber(input)
			assert.ErrorIs(t, err, plural.ErrInvalidNumber, "input %q", input)
		}
	})
}

func TestNumberOf(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"int", 42, "42"},
		{"negative int64", int64(-5), "-5"},
		{"uint8", uint8(3), "3"},
		{"float64", 2.5, "2.5"},
		{"float64 integral", 3.0, "3"},
		{"float32", float32(0.25), "0.25"},
		{"string", "1.00", "1.00"},
		{"number", plural.MustParseNumber("9"), "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := plural.NumberOf(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.String())
		})
	}

	t.Run("unsupported values", func(t *testing.T) {
		for _, v := range []any{nil, true, struct{}{}, math.NaN(), math.Inf(1), "one"} {
			_, err := plural.NumberOf(v)
			assert.ErrorIs(t, err, plural.ErrInvalidNumber)
		}
	})
}

func TestNumberCmp(t *testing.T) {
	n := plural.MustParseNumber
	assert.Equal(t, 0, n("1").Cmp(n("1.00")))
	assert.Equal(t, -1, n("0.1").Cmp(n("0.2")))
	assert.Equal(t, 1, n("10").Cmp(n("9.999")))
	assert.Equal(t, -1, n("-3").Cmp(n("2")))
	assert.True(t, n("0.00").IsZero())
	assert.True(t, n("-2").IsNegative())
	assert.Equal(t, n("2").Operands(), n("-2").Operands())
}

func TestLargeNumberOperands(t *testing.T) {
	n := plural.MustParseNumber("123456789012345678901")
	ops := n.Operands()
	assert.Equal(t, int64(1), ops.I%10)
	assert.Equal(t, int64(1), ops.I%100)
	assert.Equal(t, int64(678901), ops.I%1000000)
	assert.Greater(t, ops.I, int64(1000))
}
