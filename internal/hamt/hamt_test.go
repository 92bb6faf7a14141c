package hamt

import (
	"hash/fnv"
	"strconv"
	"testing"
)

func stringOps() Ops[string] {
	return Ops[string]{
		Hash: func(s string) uint32 {
			h := fnv.New32a()
			h.Write([]byte(s))
			return h.Sum32()
		},
		Equal: func(a, b string) bool { return a == b },
	}
}

// collidingOps hashes every key to the same value so that all entries end
// up in a single collision bucket.
func collidingOps() Ops[string] {
	return Ops[string]{
		Hash:  func(string) uint32 { return 0xdeadbeef },
		Equal: func(a, b string) bool { return a == b },
	}
}

func TestPutGet(t *testing.T) {
	tr := New[string, int](stringOps())
	for i := 0; i < 1000; i++ {
		tr = tr.Put("k"+strconv.Itoa(i), i)
	}
	if tr.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", tr.Len())
	}
	for i := 0; i < 1000; i++ {
		v, ok := tr.Get("k" + strconv.Itoa(i))
		if !ok || v != i {
			t.Fatalf("Get(k%d) = %d, %v; want %d, true", i, v, ok, i)
		}
	}
	if _, ok := tr.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
}

func TestPutReplaceKeepsCount(t *testing.T) {
	tr := New[string, int](stringOps()).Put("a", 1)
	tr2 := tr.Put("a", 2)
	if tr2.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr2.Len())
	}
	if v, _ := tr2.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d, want 2", v)
	}
	if v, _ := tr.Get("a"); v != 1 {
		t.Errorf("old version changed: Get(a) = %d, want 1", v)
	}
}

func TestRemovePersistent(t *testing.T) {
	tr := New[string, int](stringOps())
	for i := 0; i < 100; i++ {
		tr = tr.Put(strconv.Itoa(i), i)
	}
	smaller := tr
	for i := 0; i < 100; i += 2 {
		smaller = smaller.Remove(strconv.Itoa(i))
	}
	if smaller.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", smaller.Len())
	}
	if tr.Len() != 100 {
		t.Fatalf("original Len() = %d, want 100", tr.Len())
	}
	for i := 0; i < 100; i++ {
		_, ok := smaller.Get(strconv.Itoa(i))
		if ok != (i%2 == 1) {
			t.Errorf("Get(%d) present = %v", i, ok)
		}
		if _, ok := tr.Get(strconv.Itoa(i)); !ok {
			t.Errorf("original lost %d", i)
		}
	}
}

func TestRemoveAbsentReturnsReceiver(t *testing.T) {
	tr := New[string, int](stringOps()).Put("a", 1)
	if got := tr.Remove("b"); got != tr {
		t.Error("Remove of absent key should return the receiver")
	}
	empty := New[string, int](stringOps())
	if got := empty.Remove("a"); got != empty {
		t.Error("Remove on empty trie should return the receiver")
	}
}

func TestRemoveLastEntry(t *testing.T) {
	tr := New[string, int](stringOps()).Put("a", 1).Remove("a")
	if tr.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tr.Len())
	}
	count := 0
	tr.Range(func(string, int) bool { count++; return true })
	if count != 0 {
		t.Errorf("Range visited %d entries in empty trie", count)
	}
}

func TestCollisionBucket(t *testing.T) {
	tr := New[string, int](collidingOps())
	keys := []string{"a", "b", "c", "d"}
	for i, k := range keys {
		tr = tr.Put(k, i)
	}
	if tr.Len() != len(keys) {
		t.Fatalf("Len() = %d, want %d", tr.Len(), len(keys))
	}
	tr = tr.Put("b", 42)
	if tr.Len() != len(keys) {
		t.Fatalf("replace in bucket changed Len() to %d", tr.Len())
	}
	if v, ok := tr.Get("b"); !ok || v != 42 {
		t.Errorf("Get(b) = %d, %v; want 42, true", v, ok)
	}

	tr = tr.Remove("a").Remove("c")
	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
	if _, ok := tr.Get("a"); ok {
		t.Error("a still present after Remove")
	}
	if v, ok := tr.Get("d"); !ok || v != 3 {
		t.Errorf("Get(d) = %d, %v; want 3, true", v, ok)
	}
}

func TestRangeDeterministicAndStoppable(t *testing.T) {
	build := func() *Trie[string, int] {
		tr := New[string, int](stringOps())
		for i := 0; i < 50; i++ {
			tr = tr.Put(strconv.Itoa(i), i)
		}
		return tr
	}
	var first, second []string
	build().Range(func(k string, _ int) bool { first = append(first, k); return true })
	build().Range(func(k string, _ int) bool { second = append(second, k); return true })
	if len(first) != 50 || len(second) != 50 {
		t.Fatalf("visited %d and %d entries, want 50", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("iteration order differs at %d: %s vs %s", i, first[i], second[i])
		}
	}

	visited := 0
	build().Range(func(string, int) bool { visited++; return visited < 5 })
	if visited != 5 {
		t.Errorf("Range did not stop: visited %d", visited)
	}
}

func TestSameAs(t *testing.T) {
	tr := New[string, int](stringOps()).Put("a", 1)
	if !tr.SameAs(tr) {
		t.Error("trie is not SameAs itself")
	}
	if !tr.SameAs(tr.Remove("zzz")) {
		t.Error("no-op Remove should keep structure")
	}
	if tr.SameAs(tr.Put("a", 2)) {
		t.Error("Put of new value should produce a new structure")
	}
}

// slotOps uses the key itself as its hash, so each key lands in a chosen
// slot of the root bitmap.
func slotOps() Ops[uint32] {
	return Ops[uint32]{
		Hash:  func(k uint32) uint32 { return k },
		Equal: func(a, b uint32) bool { return a == b },
	}
}

func TestSparseRootSlots(t *testing.T) {
	slots := []uint32{31, 0, 17, 1, 30, 16, 5}
	tr := New[uint32, int](slotOps())
	for i, k := range slots {
		tr = tr.Put(k, i)
		for j, prev := range slots[:i+1] {
			if v, ok := tr.Get(prev); !ok || v != j {
				t.Fatalf("after inserting %d: Get(%d) = %d, %v; want %d", k, prev, v, ok, j)
			}
		}
	}
	if _, ok := tr.Get(2); ok {
		t.Error("Get of an unset slot reported a value")
	}

	tr = tr.Remove(17)
	for i, k := range slots {
		v, ok := tr.Get(k)
		if k == 17 {
			if ok {
				t.Error("removed slot still present")
			}
			continue
		}
		if !ok || v != i {
			t.Errorf("after Remove(17): Get(%d) = %d, %v; want %d", k, v, ok, i)
		}
	}
}
