package boxed

import "github.com/funvibe/boxed/internal/config"

// Option is either Some(v) holding one boxed value, or None. The shape is
// fixed at construction; every transformation returns a new Option.
//
// The zero Option is None.
type Option struct {
	value Value
}

const noneHash uint32 = 0x811c9dc5

// Some wraps v. It panics if v is nil: absence is spelled None().
func Some(v Value) Option {
	if v == nil {
		panic("boxed: Some(nil); use None()")
	}
	return Option{value: v}
}

// None returns the empty Option.
func None() Option {
	return Option{}
}

func (o Option) IsSome() bool { return o.value != nil }
func (o Option) IsNone() bool { return o.value == nil }

func (o Option) Kind() Kind { return KindOption }

func (o Option) String() string {
	if o.IsNone() {
		return config.NoneCtorName
	}
	return config.SomeCtorName + "(" + o.value.String() + ")"
}

// Object returns the wrapped value itself. On None it fails with
// UnimplementedOperation; there is no default to fall back on, callers
// that expect absence use GetOrElse or branch on IsSome.
func (o Option) Object() (Value, error) {
	if o.IsNone() {
		return nil, Unimplemented("object", config.NoneCtorName)
	}
	return o.value, nil
}

// MustObject is Object for callers that have already checked IsSome.
// It panics with the *Failure on None.
func (o Option) MustObject() Value {
	v, err := o.Object()
	if err != nil {
		panic(err)
	}
	return v
}

// Unbox unboxes the wrapped value. It fails on None, and on Some when the
// wrapped value is not Boxable.
func (o Option) Unbox() (any, error) {
	if o.IsNone() {
		return nil, Unimplemented("unbox", config.NoneCtorName)
	}
	b, ok := o.value.(Boxable)
	if !ok {
		return nil, Unimplemented("unbox", o.value.Kind().String())
	}
	return b.Unbox()
}

// Map returns Some(f(v)) for Some(v) and None for None. f is not called on
// None; panics raised by f are not recovered.
func (o Option) Map(f func(Value) Value) Option {
	if o.IsNone() {
		return o
	}
	return Some(f(o.value))
}

// MapErr is Map for fallible functions. An error from f is returned as is.
func (o Option) MapErr(f func(Value) (Value, error)) (Option, error) {
	if o.IsNone() {
		return o, nil
	}
	v, err := f(o.value)
	if err != nil {
		return None(), err
	}
	return Some(v), nil
}

// Bind (flatMap) returns f(v) for Some(v) and None for None.
func (o Option) Bind(f func(Value) Option) Option {
	if o.IsNone() {
		return o
	}
	return f(o.value)
}

// Filter keeps Some(v) only when pred(v) holds.
func (o Option) Filter(pred func(Value) bool) Option {
	if o.IsNone() || pred(o.value) {
		return o
	}
	return None()
}

// GetOrElse returns the wrapped value, or def on None.
func (o Option) GetOrElse(def Value) Value {
	if o.IsNone() {
		return def
	}
	return o.value
}

// GetOrElseFunc is GetOrElse with a lazily computed default.
func (o Option) GetOrElseFunc(f func() Value) Value {
	if o.IsNone() {
		return f()
	}
	return o.value
}

// OrElse returns o when it is Some, alt otherwise.
func (o Option) OrElse(alt Option) Option {
	if o.IsNone() {
		return alt
	}
	return o
}

// Equals: None equals None, Some(a) equals Some(b) when a equals b, and
// Some never equals None.
func (o Option) Equals(other Value) bool {
	p, ok := other.(Option)
	if !ok {
		return false
	}
	if o.IsNone() || p.IsNone() {
		return o.IsNone() && p.IsNone()
	}
	return ValuesEqual(o.value, p.value)
}

func (o Option) Hash() uint32 {
	if o.IsNone() {
		return noneHash
	}
	return mixHash(uint32(KindOption), hashOf(o.value))
}

// Compare orders None before every Some and two Somes by their wrapped
// values.
func (o Option) Compare(other Value) (Ordering, error) {
	p, ok := other.(Option)
	if !ok {
		return Equal, Mismatch("compare", KindOption, kindOf(other))
	}
	switch {
	case o.IsNone() && p.IsNone():
		return Equal, nil
	case o.IsNone():
		return Less, nil
	case p.IsNone():
		return Greater, nil
	}
	return CompareValues(o.value, p.value)
}
