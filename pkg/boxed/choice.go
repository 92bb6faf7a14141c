package boxed

import (
	"strings"

	"github.com/funvibe/boxed/internal/config"
)

// Choice is an ordered sequence of fallback candidates built with
// Choose(x).OrElse(y).OrElse(z). Selecting from it with First yields the
// first candidate accepted by a predicate, or None.
//
// The zero Choice is the empty sequence; selecting from it always yields
// None. OrElse copies, so a Choice is never modified after construction.
type Choice struct {
	candidates []Value
}

// Choose starts a Choice seeded with x. It panics if x is nil.
func Choose(x Value) Choice {
	if x == nil {
		panic("boxed: Choose(nil)")
	}
	return Choice{candidates: []Value{x}}
}

// OrElse returns a new Choice with y appended as the last candidate.
func (c Choice) OrElse(y Value) Choice {
	if y == nil {
		panic("boxed: Choice.OrElse(nil)")
	}
	next := make([]Value, len(c.candidates), len(c.candidates)+1)
	copy(next, c.candidates)
	return Choice{candidates: append(next, y)}
}

// Len returns the number of candidates.
func (c Choice) Len() int { return len(c.candidates) }

// Candidates returns a copy of the candidates in order.
func (c Choice) Candidates() []Value {
	out := make([]Value, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// First returns Some(first candidate satisfying pred), or None.
func (c Choice) First(pred func(Value) bool) Option {
	for _, v := range c.candidates {
		if pred(v) {
			return Some(v)
		}
	}
	return None()
}

// Object returns the first candidate. An empty Choice fails exactly like
// None.Object.
func (c Choice) Object() (Value, error) {
	return c.First(func(Value) bool { return true }).Object()
}

// Unbox unboxes the first candidate.
func (c Choice) Unbox() (any, error) {
	return c.First(func(Value) bool { return true }).Unbox()
}

func (c Choice) Kind() Kind { return KindChoice }

func (c Choice) String() string {
	parts := make([]string, len(c.candidates))
	for i, v := range c.candidates {
		parts[i] = v.String()
	}
	return config.ChoiceKindName + "(" + strings.Join(parts, " | ") + ")"
}

// Equals compares candidates pairwise, in order.
func (c Choice) Equals(other Value) bool {
	o, ok := other.(Choice)
	if !ok || len(o.candidates) != len(c.candidates) {
		return false
	}
	for i := range c.candidates {
		if !ValuesEqual(c.candidates[i], o.candidates[i]) {
			return false
		}
	}
	return true
}

func (c Choice) Hash() uint32 {
	h := uint32(KindChoice)
	for _, v := range c.candidates {
		h = mixHash(h, hashOf(v))
	}
	return h
}
