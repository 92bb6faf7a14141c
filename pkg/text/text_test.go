package text

import (
	"errors"
	"math"
	"testing"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		mode    string
		want    string
		wantErr bool
	}{
		{"", "unicode", false},
		{"unicode", "unicode", false},
		{"ascii", "ascii", false},
		{"ebcdic", "", true},
	}
	for _, tt := range tests {
		tx, err := Select(tt.mode)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Select(%q): expected error", tt.mode)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Select(%q): unexpected error: %v", tt.mode, err)
		}
		if tx.Name() != tt.want {
			t.Errorf("Select(%q).Name() = %q, want %q", tt.mode, tx.Name(), tt.want)
		}
	}
}

func TestUnicode(t *testing.T) {
	tx := Unicode()

	n, err := tx.Len("héllo wörld")
	if err != nil || n != 11 {
		t.Errorf("Len = %d, %v; want 11", n, err)
	}

	i, err := tx.Index("naïve café", "café")
	if err != nil || i != 6 {
		t.Errorf("Index = %d, %v; want 6", i, err)
	}
	if i, _ := tx.Index("abc", "z"); i != -1 {
		t.Errorf("Index of missing = %d, want -1", i)
	}

	up, err := tx.Upper("héllo ǆ")
	if err != nil || up != "HÉLLO Ǆ" {
		t.Errorf("Upper = %q, %v; want HÉLLO Ǆ", up, err)
	}
	low, err := tx.Lower("ÀÉÎ")
	if err != nil || low != "àéî" {
		t.Errorf("Lower = %q, %v; want àéî", low, err)
	}

	sub, err := tx.Substr("日本語テキスト", 2, 3)
	if err != nil || sub != "語テキ" {
		t.Errorf("Substr = %q, %v; want 語テキ", sub, err)
	}
	tail, err := tx.Substr("日本語", 1, -1)
	if err != nil || tail != "本語" {
		t.Errorf("Substr to end = %q, %v; want 本語", tail, err)
	}
	if _, err := tx.Substr("abc", 2, 5); !errors.Is(err, ErrRange) {
		t.Errorf("Substr past end: err = %v, want ErrRange", err)
	}
	if _, err := tx.Substr("abc", 1, math.MaxInt); !errors.Is(err, ErrRange) {
		t.Errorf("Substr with huge length: err = %v, want ErrRange", err)
	}
	if s, err := tx.Substr("abc", 1, 2); err != nil || s != "bc" {
		t.Errorf("Substr to exact end = %q, %v; want bc", s, err)
	}

	if _, err := tx.Len("\xff\xfe"); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Len(invalid) err = %v, want ErrInvalidUTF8", err)
	}
}

func TestASCII(t *testing.T) {
	tx := ASCII()

	if n, err := tx.Len("hello"); err != nil || n != 5 {
		t.Errorf("Len = %d, %v; want 5", n, err)
	}
	if up, err := tx.Upper("Hello, World 42"); err != nil || up != "HELLO, WORLD 42" {
		t.Errorf("Upper = %q, %v", up, err)
	}
	if low, err := tx.Lower("MiXeD"); err != nil || low != "mixed" {
		t.Errorf("Lower = %q, %v", low, err)
	}
	if i, err := tx.Index("abcabc", "ca"); err != nil || i != 2 {
		t.Errorf("Index = %d, %v; want 2", i, err)
	}
	if s, err := tx.Substr("abcdef", 1, 3); err != nil || s != "bcd" {
		t.Errorf("Substr = %q, %v; want bcd", s, err)
	}
	for _, length := range []int{7, math.MaxInt} {
		if _, err := tx.Substr("abcdef", 1, length); !errors.Is(err, ErrRange) {
			t.Errorf("Substr(1, %d) err = %v, want ErrRange", length, err)
		}
	}
}

func TestASCIIRejectsMultiByteInput(t *testing.T) {
	tx := ASCII()
	in := "café"

	if _, err := tx.Len(in); !errors.Is(err, ErrNonASCII) {
		t.Errorf("Len err = %v, want ErrNonASCII", err)
	}
	if _, err := tx.Upper(in); !errors.Is(err, ErrNonASCII) {
		t.Errorf("Upper err = %v, want ErrNonASCII", err)
	}
	if _, err := tx.Lower(in); !errors.Is(err, ErrNonASCII) {
		t.Errorf("Lower err = %v, want ErrNonASCII", err)
	}
	if _, err := tx.Index("abc", "é"); !errors.Is(err, ErrNonASCII) {
		t.Errorf("Index err = %v, want ErrNonASCII", err)
	}
	if _, err := tx.Substr(in, 0, 3); !errors.Is(err, ErrNonASCII) {
		t.Errorf("Substr err = %v, want ErrNonASCII", err)
	}
}

func TestModesAgreeOnASCII(t *testing.T) {
	u, a := Unicode(), ASCII()
	in := "The Quick Brown Fox"

	un, _ := u.Len(in)
	an, _ := a.Len(in)
	if un != an {
		t.Errorf("Len differs: %d vs %d", un, an)
	}
	uu, _ := u.Upper(in)
	au, _ := a.Upper(in)
	if uu != au {
		t.Errorf("Upper differs: %q vs %q", uu, au)
	}
	us, _ := u.Substr(in, 4, 5)
	as, _ := a.Substr(in, 4, 5)
	if us != as {
		t.Errorf("Substr differs: %q vs %q", us, as)
	}
}
