package text

import (
	"strings"

	"github.com/funvibe/boxed/internal/config"
)

type asciiText struct{}

// ASCII returns the single-byte fallback collaborator.
func ASCII() Text { return asciiText{} }

func (asciiText) Name() string { return config.TextModeASCII }

func checkASCII(ss ...string) error {
	for _, s := range ss {
		for i := 0; i < len(s); i++ {
			if s[i] >= 0x80 {
				return ErrNonASCII
			}
		}
	}
	return nil
}

func (asciiText) Len(s string) (int, error) {
	if err := checkASCII(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

func (asciiText) Index(s, sub string) (int, error) {
	if err := checkASCII(s, sub); err != nil {
		return 0, err
	}
	return strings.Index(s, sub), nil
}

func (asciiText) Upper(s string) (string, error) {
	if err := checkASCII(s); err != nil {
		return "", err
	}
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b), nil
}

func (asciiText) Lower(s string) (string, error) {
	if err := checkASCII(s); err != nil {
		return "", err
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b), nil
}

func (asciiText) Substr(s string, start, length int) (string, error) {
	if err := checkASCII(s); err != nil {
		return "", err
	}
	end, err := span(len(s), start, length)
	if err != nil {
		return "", err
	}
	return s[start:end], nil
}
