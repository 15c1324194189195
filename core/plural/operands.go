package plural

// Operands are the CLDR plural operands of a number's absolute value.
// See https://unicode.org/reports/tr35/tr35-numbers.html#Operands
//
//	I: integer digits
//	V: number of visible fraction digits, with trailing zeros
//	W: number of visible fraction digits, without trailing zeros
//	F: visible fraction digits, with trailing zeros, as an integer
//	T: visible fraction digits, without trailing zeros, as an integer
//
// The n operand (absolute value) is expressed through the n* helpers, which only
// match integer values when compared against integers.
type Operands struct {
	I, V, W, F, T int64
}

// integral reports whether n has no non-zero fraction digits.
func (o Operands) integral() bool { return o.T == 0 }

// nIs reports n = v1,v2,...
func (o Operands) nIs(vals ...int64) bool {
	return o.integral() && anyOf(o.I, vals...)
}

// nIn reports n = from..to.
func (o Operands) nIn(from, to int64) bool {
	return o.integral() && inRange(o.I, from, to)
}

// nModIs reports n % mod = v1,v2,...
func (o Operands) nModIs(mod int64, vals ...int64) bool {
	return o.integral() && anyOf(o.I%mod, vals...)
}

// nModIn reports n % mod = from..to.
func (o Operands) nModIn(mod, from, to int64) bool {
	return o.integral() && inRange(o.I%mod, from, to)
}

// iModIs reports i % mod = v1,v2,...
func (o Operands) iModIs(mod int64, vals ...int64) bool {
	return anyOf(o.I%mod, vals...)
}

// iModIn reports i % mod = from..to.
func (o Operands) iModIn(mod, from, to int64) bool {
	return inRange(o.I%mod, from, to)
}

// fModIs reports f % mod = v1,v2,...
func (o Operands) fModIs(mod int64, vals ...int64) bool {
	return anyOf(o.F%mod, vals...)
}

// fModIn reports f % mod = from..to.
func (o Operands) fModIn(mod, from, to int64) bool {
	return inRange(o.F%mod, from, to)
}

// millions reports "e = 0 and i != 0 and i % 1000000 = 0 and v = 0".
// Compact exponent notation is never produced, so e is always 0.
func (o Operands) millions() bool {
	return o.I != 0 && o.I%1000000 == 0 && o.V == 0
}

func anyOf(x int64, vals ...int64) bool {
	for _, v := range vals {
		if x == v {
			return true
		}
	}
	return false
}

func inRange(x, from, to int64) bool {
	return from <= x && x <= to
}
