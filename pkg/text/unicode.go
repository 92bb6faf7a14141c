package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/funvibe/boxed/internal/config"
)

type unicodeText struct{}

// Unicode returns the rune-aware collaborator.
func Unicode() Text { return unicodeText{} }

func (unicodeText) Name() string { return config.TextModeUnicode }

func (unicodeText) Len(s string) (int, error) {
	if !utf8.ValidString(s) {
		return 0, ErrInvalidUTF8
	}
	return utf8.RuneCountInString(s), nil
}

func (unicodeText) Index(s, sub string) (int, error) {
	if !utf8.ValidString(s) || !utf8.ValidString(sub) {
		return 0, ErrInvalidUTF8
	}
	i := strings.Index(s, sub)
	if i < 0 {
		return -1, nil
	}
	return utf8.RuneCountInString(s[:i]), nil
}

// Casers are not safe for concurrent use, so a fresh one is built per call.
func (unicodeText) Upper(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	return cases.Upper(language.Und).String(s), nil
}

func (unicodeText) Lower(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	return cases.Lower(language.Und).String(s), nil
}

func (unicodeText) Substr(s string, start, length int) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	runes := []rune(s)
	end, err := span(len(runes), start, length)
	if err != nil {
		return "", err
	}
	return string(runes[start:end]), nil
}
