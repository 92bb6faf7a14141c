package boxed

import (
	"fmt"
	"hash/fnv"

	"github.com/funvibe/boxed/internal/config"
)

// Defaults shared by the variants. A variant uses these unless it has a
// reason to shadow them (Option, Choice and Map render their own String).

// NotEqual is the negation of a.Equals(b).
func NotEqual(a Equality, b Value) bool {
	return !a.Equals(b)
}

// Describe renders v as Kind(payload) when it unboxes, and as the bare
// kind name otherwise.
func Describe(v Value) string {
	if v == nil {
		return KindInvalid.String()
	}
	if b, ok := v.(Boxable); ok {
		if p, err := b.Unbox(); err == nil {
			return fmt.Sprintf("%s(%v)", v.Kind(), p)
		}
	}
	return v.Kind().String()
}

// ValuesEqual compares two arbitrary boxed values, like Equals but defined
// for values without Equality too: a Host equals only itself.
func ValuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case Equality:
		return x.Equals(b)
	case Host:
		return x.same(b)
	}
	return false
}

// CompareValues orders a against b using a's Comparable capability.
func CompareValues(a, b Value) (Ordering, error) {
	ca, ok := a.(Comparable)
	if !ok {
		return Equal, Unimplemented("compare", kindOf(a).String())
	}
	return ca.Compare(b)
}

// Capabilities lists the capability names v implements.
func Capabilities(v Value) []string {
	var caps []string
	if _, ok := v.(Equality); ok {
		caps = append(caps, config.EqualityCapName)
	}
	if _, ok := v.(Comparable); ok {
		caps = append(caps, config.ComparableCapName)
	}
	if _, ok := v.(Boxable); ok {
		caps = append(caps, config.BoxableCapName)
	}
	return caps
}

// hashOf returns the hash of v, or a kind-derived constant when v lacks
// Equality (such values never compare equal, so any constant is consistent).
func hashOf(v Value) uint32 {
	if e, ok := v.(Equality); ok {
		return e.Hash()
	}
	return uint32(kindOf(v)) * 0x9e3779b1
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

func hashBytes(b []byte) uint32 {
	h := fnv.New32a()
	h.Write(b)
	return h.Sum32()
}

// mixHash folds h into seed.
func mixHash(seed, h uint32) uint32 {
	return seed*31 + h
}
