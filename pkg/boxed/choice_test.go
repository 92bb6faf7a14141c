package boxed

import (
	"errors"
	"testing"
)

func always(Value) bool { return true }
func never(Value) bool  { return false }

func TestChooseObject(t *testing.T) {
	v, err := Choose(Int32(0)).Object()
	if err != nil {
		t.Fatalf("Object: %v", err)
	}
	if !ValuesEqual(v, Int32(0)) {
		t.Errorf("Object = %v, want Int32(0)", v)
	}
}

func TestChooseAlwaysTrueReturnsSeed(t *testing.T) {
	c := Choose(Str("x")).OrElse(Str("y")).OrElse(Str("z"))
	if got := c.First(always); !got.Equals(Some(Str("x"))) {
		t.Errorf("First(always) = %v, want Some(x)", got)
	}
}

func TestChoiceFallbacks(t *testing.T) {
	c := Choose(Int32(-1)).OrElse(Int32(0)).OrElse(Int32(5)).OrElse(Int32(8))
	positive := func(v Value) bool { return v.(Int32) > 0 }
	if got := c.First(positive); !got.Equals(Some(Int32(5))) {
		t.Errorf("First(positive) = %v, want Some(Int32(5))", got)
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
}

func TestChoiceNoCandidateIsAbsence(t *testing.T) {
	got := Choose(Int32(1)).First(never)
	if !got.Equals(None()) {
		t.Errorf("First(never) = %v, want None", got)
	}

	var empty Choice
	if got := empty.First(always); !got.IsNone() {
		t.Errorf("empty First = %v, want None", got)
	}
	_, errEmpty := empty.Object()
	_, errNone := None().Object()
	if !errors.Is(errEmpty, ErrUnimplemented) {
		t.Fatalf("empty Object err = %v, want UnimplementedOperation", errEmpty)
	}
	if errEmpty.Error() != errNone.Error() {
		t.Errorf("empty Choice failure %q differs from None failure %q", errEmpty, errNone)
	}
	if _, err := empty.Unbox(); !errors.Is(err, ErrUnimplemented) {
		t.Errorf("empty Unbox err = %v", err)
	}
}

func TestChoiceIsPersistent(t *testing.T) {
	base := Choose(Int32(1))
	a := base.OrElse(Int32(2))
	b := base.OrElse(Int32(3))
	if base.Len() != 1 {
		t.Errorf("base changed: Len() = %d", base.Len())
	}
	if a.Equals(b) {
		t.Error("branches built from the same base must stay independent")
	}
	if got := a.Candidates(); len(got) != 2 || !ValuesEqual(got[1], Int32(2)) {
		t.Errorf("a.Candidates() = %v", got)
	}

	cands := a.Candidates()
	cands[0] = Int32(99)
	if !ValuesEqual(a.Candidates()[0], Int32(1)) {
		t.Error("Candidates must return a copy")
	}
}

func TestChoiceEqualityAndString(t *testing.T) {
	a := Choose(Int32(1)).OrElse(Str("b"))
	b := Choose(Int32(1)).OrElse(Str("b"))
	if !a.Equals(b) || a.Hash() != b.Hash() {
		t.Error("structurally equal choices must be equal and hash alike")
	}
	if a.Equals(Choose(Str("b")).OrElse(Int32(1))) {
		t.Error("candidate order matters")
	}
	if got, want := a.String(), `Choice(Int32(1) | Str("b"))`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	p, err := a.Unbox()
	if err != nil || p != int32(1) {
		t.Errorf("Unbox = %v, %v", p, err)
	}
}

func TestChooseNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Choose(nil) did not panic")
		}
	}()
	Choose(nil)
}
