package boxed

// Kind-dispatching arithmetic for callers holding plain Values. Both
// operands must be of the same numeric kind; anything else is a
// TypeMismatch. The typed methods on Int32 and Int64 are preferable when the
// kinds are known statically.

func Add(a, b Value) (Value, error) { return arith("add", a, b, Int32.Add, Int64.Add) }
func Sub(a, b Value) (Value, error) { return arith("sub", a, b, Int32.Sub, Int64.Sub) }
func Mul(a, b Value) (Value, error) { return arith("mul", a, b, Int32.Mul, Int64.Mul) }
func Div(a, b Value) (Value, error) { return arithErr("div", a, b, Int32.Div, Int64.Div) }
func Mod(a, b Value) (Value, error) { return arithErr("mod", a, b, Int32.Mod, Int64.Mod) }

// Neg negates a numeric value; other kinds do not implement negation.
func Neg(a Value) (Value, error) {
	switch x := a.(type) {
	case Int32:
		return x.Neg(), nil
	case Int64:
		return x.Neg(), nil
	}
	return nil, Unimplemented("neg", kindOf(a).String())
}

func arith(op string, a, b Value, f32 func(Int32, Int32) Int32, f64 func(Int64, Int64) Int64) (Value, error) {
	switch x := a.(type) {
	case Int32:
		if y, ok := b.(Int32); ok {
			return f32(x, y), nil
		}
	case Int64:
		if y, ok := b.(Int64); ok {
			return f64(x, y), nil
		}
	}
	return nil, Mismatch(op, kindOf(a), kindOf(b))
}

func arithErr(op string, a, b Value, f32 func(Int32, Int32) (Int32, error), f64 func(Int64, Int64) (Int64, error)) (Value, error) {
	switch x := a.(type) {
	case Int32:
		if y, ok := b.(Int32); ok {
			r, err := f32(x, y)
			if err != nil {
				return nil, err
			}
			return r, nil
		}
	case Int64:
		if y, ok := b.(Int64); ok {
			r, err := f64(x, y)
			if err != nil {
				return nil, err
			}
			return r, nil
		}
	}
	return nil, Mismatch(op, kindOf(a), kindOf(b))
}
