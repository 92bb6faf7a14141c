package boxed

import (
	"strconv"

	"github.com/funvibe/boxed/pkg/text"
)

// Str is a boxed string. Text operations go through an explicit
// text.Text collaborator so the caller decides between Unicode and the
// ASCII fallback.
type Str string

func (s Str) Kind() Kind     { return KindStr }
func (s Str) String() string { return "Str(" + strconv.Quote(string(s)) + ")" }
func (s Str) Hash() uint32   { return hashString(string(s)) }

func (s Str) Equals(other Value) bool {
	o, ok := other.(Str)
	return ok && o == s
}

// Compare orders strings bytewise.
func (s Str) Compare(other Value) (Ordering, error) {
	o, ok := other.(Str)
	if !ok {
		return Equal, Mismatch("compare", KindStr, kindOf(other))
	}
	return orderingOf(string(s), string(o)), nil
}

func (s Str) Unbox() (any, error) { return string(s), nil }

func (s Str) Concat(o Str) Str { return s + o }

func (s Str) Len(tx text.Text) (Int64, error) {
	n, err := tx.Len(string(s))
	return Int64(n), err
}

// Index returns the offset of sub in s wrapped in Some, or None.
func (s Str) Index(tx text.Text, sub Str) (Option, error) {
	i, err := tx.Index(string(s), string(sub))
	if err != nil {
		return None(), err
	}
	if i < 0 {
		return None(), nil
	}
	return Some(Int64(i)), nil
}

func (s Str) Upper(tx text.Text) (Str, error) {
	u, err := tx.Upper(string(s))
	return Str(u), err
}

func (s Str) Lower(tx text.Text) (Str, error) {
	l, err := tx.Lower(string(s))
	return Str(l), err
}

func (s Str) Substr(tx text.Text, start, length int) (Str, error) {
	sub, err := tx.Substr(string(s), start, length)
	return Str(sub), err
}
