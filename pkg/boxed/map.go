package boxed

import (
	"reflect"
	"slices"
	"strings"

	"github.com/funvibe/boxed/internal/config"
	"github.com/funvibe/boxed/internal/hamt"
)

// Map is an immutable map from Equality-capable keys to boxed values.
// Put and Remove return new maps; the receiver is never modified.
//
// The zero Map is empty and ready to use.
type Map struct {
	trie *hamt.Trie[Equality, Value]
}

// Pair is a key-value pair as accepted by NewMap and returned by Items.
type Pair struct {
	Key   Value
	Value Value
}

var emptyTrie = hamt.New[Equality, Value](hamt.Ops[Equality]{
	Hash:  func(k Equality) uint32 { return k.Hash() },
	Equal: func(a, b Equality) bool { return a.Equals(b) },
})

// EmptyMap returns the empty map.
func EmptyMap() Map {
	return Map{trie: emptyTrie}
}

// NewMap builds a map from pairs. Later pairs replace earlier ones with an
// equal key. A key without Equality fails with CapabilityMissing before
// anything is stored.
func NewMap(pairs ...Pair) (Map, error) {
	keys := make([]Equality, len(pairs))
	for i, p := range pairs {
		k, ok := p.Key.(Equality)
		if !ok {
			return Map{}, MissingCapability(config.EqualityCapName, kindOf(p.Key), "map key")
		}
		if p.Value == nil {
			return Map{}, newFailure(TypeMismatch, "map value: nil value for key :key",
				map[string]any{"key": p.Key})
		}
		keys[i] = k
	}

	m := EmptyMap()
	for i, p := range pairs {
		m = m.Put(keys[i], p.Value)
	}
	return m, nil
}

func (m Map) t() *hamt.Trie[Equality, Value] {
	if m.trie == nil {
		return emptyTrie
	}
	return m.trie
}

func (m Map) Kind() Kind { return KindMap }

// Len returns the number of entries.
func (m Map) Len() int { return m.t().Len() }

// Get returns Some(value) for a present key and None otherwise.
func (m Map) Get(key Equality) Option {
	if v, ok := m.t().Get(key); ok {
		return Some(v)
	}
	return None()
}

// Contains reports whether key is present.
func (m Map) Contains(key Equality) bool {
	_, ok := m.t().Get(key)
	return ok
}

// Put returns a map with key bound to v. An existing equal key is
// replaced, so the size only grows for new keys. It panics if v is nil.
func (m Map) Put(key Equality, v Value) Map {
	if v == nil {
		panic("boxed: Map.Put with nil value")
	}
	return Map{trie: m.t().Put(key, v)}
}

// Remove returns a map without key. Removing an absent key returns an equal
// map.
func (m Map) Remove(key Equality) Map {
	return Map{trie: m.t().Remove(key)}
}

// Merge returns a map with the entries of other added; other wins on
// conflicting keys.
func (m Map) Merge(other Map) Map {
	result := m.t()
	other.t().Range(func(k Equality, v Value) bool {
		result = result.Put(k, v)
		return true
	})
	return Map{trie: result}
}

// Range calls fn for each entry until fn returns false. The iteration
// order is deterministic for a given sequence of operations.
func (m Map) Range(fn func(key Equality, value Value) bool) {
	m.t().Range(fn)
}

// Keys returns all keys in iteration order.
func (m Map) Keys() []Value {
	keys := make([]Value, 0, m.Len())
	m.Range(func(k Equality, _ Value) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns all values in iteration order.
func (m Map) Values() []Value {
	values := make([]Value, 0, m.Len())
	m.Range(func(_ Equality, v Value) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Items returns all pairs in iteration order.
func (m Map) Items() []Pair {
	items := make([]Pair, 0, m.Len())
	m.Range(func(k Equality, v Value) bool {
		items = append(items, Pair{Key: k, Value: v})
		return true
	})
	return items
}

// Equals holds when both maps have the same keys and every key maps to
// equal values.
func (m Map) Equals(other Value) bool {
	o, ok := other.(Map)
	if !ok {
		return false
	}
	if m.t().SameAs(o.t()) {
		return true
	}
	if m.Len() != o.Len() {
		return false
	}
	equal := true
	m.Range(func(k Equality, v Value) bool {
		v2, found := o.t().Get(k)
		equal = found && ValuesEqual(v, v2)
		return equal
	})
	return equal
}

// Hash is independent of iteration order.
func (m Map) Hash() uint32 {
	h := uint32(KindMap)
	m.Range(func(k Equality, v Value) bool {
		h += mixHash(k.Hash(), hashOf(v))
		return true
	})
	return h
}

// Unbox returns a map[any]any of unboxed keys and values. Any entry that
// fails to unbox fails the whole map; a key that unboxes to a value Go
// cannot use as a map key (a map, a slice) is a TypeMismatch.
func (m Map) Unbox() (any, error) {
	out := make(map[any]any, m.Len())
	var err error
	m.Range(func(k Equality, v Value) bool {
		var kp, vp any
		if kp, err = unboxValue(k); err != nil {
			return false
		}
		if kp != nil && !reflect.TypeOf(kp).Comparable() {
			err = newFailure(TypeMismatch, ":op: key :kind unboxes to non-comparable :type",
				map[string]any{"op": "unbox", "kind": k.Kind(), "type": reflect.TypeOf(kp)})
			return false
		}
		if vp, err = unboxValue(v); err != nil {
			return false
		}
		out[kp] = vp
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func unboxValue(v Value) (any, error) {
	b, ok := v.(Boxable)
	if !ok {
		return nil, Unimplemented("unbox", v.Kind().String())
	}
	return b.Unbox()
}

// String renders the map as {k: v, ...} with entries sorted by key text.
func (m Map) String() string {
	items := m.Items()
	parts := make([]string, len(items))
	for i, p := range items {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	slices.Sort(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}
