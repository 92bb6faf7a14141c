package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/boxed/internal/config"
	"github.com/funvibe/boxed/pkg/boxed"
	"github.com/funvibe/boxed/pkg/wire"
)

const (
	ansiKind  = "\033[36m"
	ansiReset = "\033[0m"
)

// useColor decides whether kind names are highlighted. In auto mode this
// follows the NO_COLOR convention and requires w to be a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// inspector renders values in the same shape as their String methods,
// optionally highlighting kind and shape names.
type inspector struct {
	color bool
}

func (in inspector) paint(name string) string {
	if !in.color {
		return name
	}
	return ansiKind + name + ansiReset
}

func (in inspector) format(v boxed.Value) string {
	switch x := v.(type) {
	case boxed.Option:
		if x.IsNone() {
			return in.paint(config.NoneCtorName)
		}
		return in.paint(config.SomeCtorName) + "(" + in.format(x.MustObject()) + ")"
	case boxed.Choice:
		parts := make([]string, 0, x.Len())
		for _, c := range x.Candidates() {
			parts = append(parts, in.format(c))
		}
		return in.paint(config.ChoiceKindName) + "(" + strings.Join(parts, " | ") + ")"
	case boxed.Map:
		items := x.Items()
		// Sort on the plain rendering so colour does not change the order.
		slices.SortFunc(items, func(a, b boxed.Pair) int {
			return strings.Compare(a.Key.String(), b.Key.String())
		})
		parts := make([]string, len(items))
		for i, p := range items {
			parts[i] = in.format(p.Key) + ": " + in.format(p.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	s := v.String()
	kind := v.Kind().String()
	if rest, ok := strings.CutPrefix(s, kind); ok {
		return in.paint(kind) + rest
	}
	return s
}

func render(w io.Writer, m boxed.Map, format string, in inspector) error {
	switch format {
	case config.FormatYAML:
		out, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case config.FormatJSON:
		out, err := wire.EncodeJSON(m, "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}
	_, err := fmt.Fprintln(w, in.format(m))
	return err
}
