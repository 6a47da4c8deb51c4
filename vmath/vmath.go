package vmath

// Q22.10 Fixed Point constants
// Layout matches the 32-bit fix32 of the target hardware so that every
// threshold compares bit-for-bit against the values the levels were tuned with
const (
	FracBits = 10
	IntBits  = 32 - FracBits
	One      = Fix32(1 << FracBits)
	Half     = Fix32(1 << (FracBits - 1))
	FracMask = One - 1
)

// Fix32 is a signed 32-bit fixed point scalar
// Native +, -, <<, >> and comparisons on Fix32 are the intended arithmetic:
// they wrap and truncate exactly like int32
type Fix32 int32

// --- Arithmetic ---

func FromInt(i int) Fix32       { return Fix32(int32(i) << FracBits) }
func ToInt(f Fix32) int         { return int(f >> FracBits) }
func ToFloat(f Fix32) float64   { return float64(f) / float64(One) }
func FromFloat(f float64) Fix32 { return Fix32(int32(f * float64(One))) }
func (f Fix32) Int() int        { return ToInt(f) }
func (f Fix32) Frac() Fix32     { return f & FracMask }
func (f Fix32) Float() float64  { return ToFloat(f) }

// Abs returns absolute value
// Abs of the most negative value wraps to itself, as with int32
func Abs(x Fix32) Fix32 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -One, 0, or One
func Sign(x Fix32) Fix32 {
	if x < 0 {
		return -One
	}
	if x > 0 {
		return One
	}
	return 0
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi Fix32) Fix32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Mul multiplies with a 64-bit intermediate and truncates back to 32 bits
func Mul(a, b Fix32) Fix32 {
	return Fix32(int32((int64(a) * int64(b)) >> FracBits))
}

// Div divides with a 64-bit intermediate, zero divisor yields 0
func Div(a, b Fix32) Fix32 {
	if b == 0 {
		return 0
	}
	return Fix32(int32((int64(a) << FracBits) / int64(b)))
}
