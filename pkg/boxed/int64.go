package boxed

import "math"

// Int64 is a boxed 64-bit signed integer with wrap-around arithmetic.
type Int64 int64

// Canonical Int64 constants.
func Zero64() Int64   { return 0 }
func One64() Int64    { return 1 }
func MinInt64() Int64 { return math.MinInt64 }
func MaxInt64() Int64 { return math.MaxInt64 }

func (i Int64) Kind() Kind     { return KindInt64 }
func (i Int64) String() string { return Describe(i) }
func (i Int64) Hash() uint32   { return uint32(i ^ (i >> 32)) }

func (i Int64) Equals(other Value) bool {
	o, ok := other.(Int64)
	return ok && o == i
}

func (i Int64) Compare(other Value) (Ordering, error) {
	o, ok := other.(Int64)
	if !ok {
		return Equal, Mismatch("compare", KindInt64, kindOf(other))
	}
	return orderingOf(int64(i), int64(o)), nil
}

// Unbox returns the payload as an int64.
func (i Int64) Unbox() (any, error) { return int64(i), nil }

func (i Int64) Add(o Int64) Int64 { return i + o }
func (i Int64) Sub(o Int64) Int64 { return i - o }
func (i Int64) Mul(o Int64) Int64 { return i * o }
func (i Int64) Neg() Int64        { return -i }

func (i Int64) Div(o Int64) (Int64, error) {
	if o == 0 {
		return 0, DivByZero("div", KindInt64)
	}
	return i / o, nil
}

func (i Int64) Mod(o Int64) (Int64, error) {
	if o == 0 {
		return 0, DivByZero("mod", KindInt64)
	}
	return i % o, nil
}
