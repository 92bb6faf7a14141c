// Package text provides the string collaborator used by boxed Str values.
//
// Two implementations exist. Unicode works on runes and uses
// golang.org/x/text for case mapping; it is the default. ASCII is a
// single-byte fallback for environments without Unicode support. It never
// guesses: any input byte outside 7-bit ASCII makes it fail with
// ErrNonASCII instead of returning corrupted text.
//
// The implementation is chosen once, usually at process start via Select,
// and passed to the code that needs it.
package text

import (
	"errors"
	"fmt"

	"github.com/funvibe/boxed/internal/config"
)

var (
	// ErrNonASCII is returned by the ASCII collaborator for input it cannot
	// handle without corrupting multi-byte characters.
	ErrNonASCII = errors.New("text: non-ASCII input in ascii mode")

	// ErrInvalidUTF8 is returned by the Unicode collaborator for input that
	// is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("text: invalid UTF-8")

	// ErrRange is returned by Substr for offsets outside the string.
	ErrRange = errors.New("text: offset out of range")
)

// Text is the string/locale capability. Offsets and lengths are counted in
// the collaborator's unit: runes for Unicode, bytes for ASCII (the two
// agree on ASCII input).
type Text interface {
	// Name returns the mode name ("unicode" or "ascii").
	Name() string
	Len(s string) (int, error)
	// Index returns the offset of the first occurrence of sub in s, or -1.
	Index(s, sub string) (int, error)
	Upper(s string) (string, error)
	Lower(s string) (string, error)
	// Substr returns length units of s starting at start. A negative
	// length means "to the end".
	Substr(s string, start, length int) (string, error)
}

// Select returns the collaborator for mode. An empty mode selects Unicode.
func Select(mode string) (Text, error) {
	switch mode {
	case "", config.TextModeUnicode:
		return Unicode(), nil
	case config.TextModeASCII:
		return ASCII(), nil
	}
	return nil, fmt.Errorf("text: unknown mode %q", mode)
}

// span validates start/length against n units and returns the end offset.
func span(n, start, length int) (int, error) {
	if start < 0 || start > n {
		return 0, fmt.Errorf("%w: start %d not in [0, %d]", ErrRange, start, n)
	}
	if length < 0 {
		return n, nil
	}
	if length > n-start {
		return 0, fmt.Errorf("%w: length %d past %d from %d", ErrRange, length, n, start)
	}
	return start + length, nil
}
