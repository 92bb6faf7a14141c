// Package boxed provides immutable boxed values with a uniform capability
// protocol, an Option type for presence/absence, fixed-width integers with
// wrap-around arithmetic and a persistent map keyed by boxed values.
//
// Every boxed value implements Value. On top of that a variant implements
// any subset of three capabilities:
//
//   - Equality: structural Equals plus a Hash consistent with it.
//   - Comparable: a total order within the variant's kind.
//   - Boxable: Unbox back to the host-native Go payload.
//
// Capabilities are separate interfaces, so a type assertion tells whether
// a value supports one. Operations that a particular shape of a variant
// cannot perform (Object on None, Unbox of an absent value) return a
// *Failure instead of a placeholder.
//
// All values are immutable. Operations that look like updates (Map.Put,
// Option.Map, Choice.OrElse) return new values and never touch the
// receiver, so values can be shared between goroutines without locking.
package boxed

// Value is implemented by every boxed value.
type Value interface {
	Kind() Kind
	String() string
}

// Equality is the structural-equality capability. Equals must be
// reflexive, symmetric and transitive, values of different kinds are never
// equal, and equal values return equal hashes.
type Equality interface {
	Value
	Equals(other Value) bool
	Hash() uint32
}

// Comparable is the ordering capability. Compare returns Equal exactly when
// Equals would return true. Comparing against an incompatible kind returns
// a TypeMismatch failure.
type Comparable interface {
	Value
	Compare(other Value) (Ordering, error)
}

// Boxable is the unboxing capability.
type Boxable interface {
	Value
	Unbox() (any, error)
}

// Ordering is the result of Compare.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Ordering(?)"
}

func orderingOf[T int32 | int64 | string](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}
