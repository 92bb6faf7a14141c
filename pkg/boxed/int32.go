package boxed

import "math"

// Int32 is a boxed 32-bit signed integer. Arithmetic wraps modulo 2^32
// (two's complement) and never fails on overflow.
type Int32 int32

// Canonical Int32 constants.
func Zero32() Int32   { return 0 }
func One32() Int32    { return 1 }
func MinInt32() Int32 { return math.MinInt32 }
func MaxInt32() Int32 { return math.MaxInt32 }

func (i Int32) Kind() Kind     { return KindInt32 }
func (i Int32) String() string { return Describe(i) }
func (i Int32) Hash() uint32   { return uint32(i) }

func (i Int32) Equals(other Value) bool {
	o, ok := other.(Int32)
	return ok && o == i
}

func (i Int32) Compare(other Value) (Ordering, error) {
	o, ok := other.(Int32)
	if !ok {
		return Equal, Mismatch("compare", KindInt32, kindOf(other))
	}
	return orderingOf(int32(i), int32(o)), nil
}

// Unbox returns the payload as an int32.
func (i Int32) Unbox() (any, error) { return int32(i), nil }

// Go integer arithmetic already wraps, which is exactly the policy here.

func (i Int32) Add(o Int32) Int32 { return i + o }
func (i Int32) Sub(o Int32) Int32 { return i - o }
func (i Int32) Mul(o Int32) Int32 { return i * o }
func (i Int32) Neg() Int32        { return -i }

// Div truncates toward zero. MinInt32 / -1 wraps to MinInt32.
func (i Int32) Div(o Int32) (Int32, error) {
	if o == 0 {
		return 0, DivByZero("div", KindInt32)
	}
	return i / o, nil
}

// Mod has the sign of the dividend.
func (i Int32) Mod(o Int32) (Int32, error) {
	if o == 0 {
		return 0, DivByZero("mod", KindInt32)
	}
	return i % o, nil
}
