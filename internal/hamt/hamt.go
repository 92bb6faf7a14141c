// Package hamt implements a persistent Hash Array Mapped Trie.
//
// The trie knows nothing about the values it stores: hashing and key
// equality are supplied by the caller when the empty trie is created and
// are carried along by every derived version. All operations that change
// contents return a new *Trie and leave the receiver untouched, so versions
// can be shared freely between goroutines.
package hamt

import "math/bits"

const (
	levelBits = 5
	size      = 1 << levelBits // 32
	mask      = size - 1
)

// Ops supplies hashing and equality for keys of type K.
// Equal keys must hash identically.
type Ops[K any] struct {
	Hash  func(K) uint32
	Equal func(a, b K) bool
}

// Trie is an immutable hash map from K to V.
type Trie[K, V any] struct {
	ops   *Ops[K]
	root  *node[K, V]
	count int
}

// node is a node in the trie. Below the last level (shift >= 32) a node is
// a collision bucket: a plain list of entries with identical hashes.
type node[K, V any] struct {
	bitmap   uint32 // which indices are populated
	contents []any  // *entry[K, V] or *node[K, V]
}

type entry[K, V any] struct {
	hash  uint32
	key   K
	value V
}

// New returns an empty trie using ops for hashing and equality.
func New[K, V any](ops Ops[K]) *Trie[K, V] {
	return &Trie[K, V]{ops: &ops}
}

// Len returns the number of entries.
func (t *Trie[K, V]) Len() int {
	return t.count
}

// SameAs reports whether two tries share the same structure. Two versions
// with the same root are guaranteed to hold the same entries.
func (t *Trie[K, V]) SameAs(other *Trie[K, V]) bool {
	return t == other || (t.root == other.root && t.count == other.count)
}

// Get returns the value stored for key and whether it was present.
func (t *Trie[K, V]) Get(key K) (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	return t.root.get(t.ops, t.ops.Hash(key), key, 0)
}

// Put returns a new trie with the key-value pair added or replaced.
func (t *Trie[K, V]) Put(key K, value V) *Trie[K, V] {
	hash := t.ops.Hash(key)

	root := t.root
	if root == nil {
		root = &node[K, V]{}
	}
	newRoot, added := root.put(t.ops, hash, key, value, 0)

	count := t.count
	if added {
		count++
	}
	return &Trie[K, V]{ops: t.ops, root: newRoot, count: count}
}

// Remove returns a trie without key. If key is absent the receiver itself
// is returned.
func (t *Trie[K, V]) Remove(key K) *Trie[K, V] {
	if t.root == nil {
		return t
	}

	newRoot, removed := t.root.remove(t.ops, t.ops.Hash(key), key, 0)
	if !removed {
		return t
	}
	if t.count == 1 {
		newRoot = nil
	}
	return &Trie[K, V]{ops: t.ops, root: newRoot, count: t.count - 1}
}

// Range calls fn for every entry in trie order until fn returns false.
// The order depends only on key hashes and, inside collision buckets, on
// insertion order, so it is deterministic for a given set of operations.
func (t *Trie[K, V]) Range(fn func(key K, value V) bool) {
	if t.root != nil {
		t.root.walk(fn)
	}
}

// --- node methods ---

func (n *node[K, V]) get(ops *Ops[K], hash uint32, key K, shift uint) (V, bool) {
	var zero V
	if shift >= 32 {
		for _, c := range n.contents {
			e := c.(*entry[K, V])
			if ops.Equal(e.key, key) {
				return e.value, true
			}
		}
		return zero, false
	}

	bit := uint32(1) << ((hash >> shift) & mask)
	if n.bitmap&bit == 0 {
		return zero, false
	}

	switch v := n.contents[bits.OnesCount32(n.bitmap&(bit-1))].(type) {
	case *entry[K, V]:
		if v.hash == hash && ops.Equal(v.key, key) {
			return v.value, true
		}
		return zero, false
	case *node[K, V]:
		return v.get(ops, hash, key, shift+levelBits)
	}
	return zero, false
}

func (n *node[K, V]) clone() *node[K, V] {
	c := &node[K, V]{
		bitmap:   n.bitmap,
		contents: make([]any, len(n.contents)),
	}
	copy(c.contents, n.contents)
	return c
}

func (n *node[K, V]) put(ops *Ops[K], hash uint32, key K, value V, shift uint) (*node[K, V], bool) {
	fresh := &entry[K, V]{hash: hash, key: key, value: value}

	// Hash bits exhausted: collision bucket.
	if shift >= 32 {
		newNode := n.clone()
		for i, c := range newNode.contents {
			if ops.Equal(c.(*entry[K, V]).key, key) {
				newNode.contents[i] = fresh
				return newNode, false
			}
		}
		newNode.contents = append(newNode.contents, fresh)
		return newNode, true
	}

	bit := uint32(1) << ((hash >> shift) & mask)
	newNode := n.clone()

	if n.bitmap&bit == 0 {
		newNode.bitmap |= bit
		pos := bits.OnesCount32(newNode.bitmap & (bit - 1))
		newNode.contents = append(newNode.contents, nil)
		copy(newNode.contents[pos+1:], newNode.contents[pos:])
		newNode.contents[pos] = fresh
		return newNode, true
	}

	pos := bits.OnesCount32(n.bitmap & (bit - 1))
	switch v := newNode.contents[pos].(type) {
	case *entry[K, V]:
		if v.hash == hash && ops.Equal(v.key, key) {
			newNode.contents[pos] = fresh
			return newNode, false
		}

		// Push both entries one level down.
		child := &node[K, V]{}
		child, _ = child.put(ops, v.hash, v.key, v.value, shift+levelBits)
		child, _ = child.put(ops, hash, key, value, shift+levelBits)
		newNode.contents[pos] = child
		return newNode, true

	case *node[K, V]:
		newChild, added := v.put(ops, hash, key, value, shift+levelBits)
		newNode.contents[pos] = newChild
		return newNode, added
	}
	return newNode, false
}

func (n *node[K, V]) remove(ops *Ops[K], hash uint32, key K, shift uint) (*node[K, V], bool) {
	if shift >= 32 {
		for i, c := range n.contents {
			if ops.Equal(c.(*entry[K, V]).key, key) {
				return n.without(i, 0), true
			}
		}
		return n, false
	}

	bit := uint32(1) << ((hash >> shift) & mask)
	if n.bitmap&bit == 0 {
		return n, false
	}

	pos := bits.OnesCount32(n.bitmap & (bit - 1))
	switch v := n.contents[pos].(type) {
	case *entry[K, V]:
		if v.hash == hash && ops.Equal(v.key, key) {
			return n.without(pos, bit), true
		}
		return n, false

	case *node[K, V]:
		newChild, removed := v.remove(ops, hash, key, shift+levelBits)
		if !removed {
			return n, false
		}

		if len(newChild.contents) == 0 {
			return n.without(pos, bit), true
		}

		newNode := n.clone()
		// A child left with a single entry collapses into this level.
		if len(newChild.contents) == 1 {
			if e, ok := newChild.contents[0].(*entry[K, V]); ok {
				newNode.contents[pos] = e
				return newNode, true
			}
		}
		newNode.contents[pos] = newChild
		return newNode, true
	}
	return n, false
}

// without returns a copy of n with contents[pos] dropped and bit cleared.
func (n *node[K, V]) without(pos int, bit uint32) *node[K, V] {
	newNode := &node[K, V]{
		bitmap:   n.bitmap &^ bit,
		contents: make([]any, len(n.contents)-1),
	}
	copy(newNode.contents[:pos], n.contents[:pos])
	copy(newNode.contents[pos:], n.contents[pos+1:])
	return newNode
}

func (n *node[K, V]) walk(fn func(K, V) bool) bool {
	for _, c := range n.contents {
		switch v := c.(type) {
		case *entry[K, V]:
			if !fn(v.key, v.value) {
				return false
			}
		case *node[K, V]:
			if !v.walk(fn) {
				return false
			}
		}
	}
	return true
}
