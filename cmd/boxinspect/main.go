// Command boxinspect loads a YAML document into a boxed Map, applies edits
// and prints the result.
//
// Usage:
//
//	boxinspect [flags] file.yaml
//
// Use "-" as the file to read standard input. Edits are applied in the
// order puts, removes, key case mapping; the original document is never
// modified.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/funvibe/boxed/internal/config"
	"github.com/funvibe/boxed/internal/pipeline"
	"github.com/funvibe/boxed/pkg/boxed"
	"github.com/funvibe/boxed/pkg/text"
)

func main() {
	log.SetFlags(0) // Disable timestamp in logs
	log.SetPrefix("boxinspect: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// listFlag collects a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string     { return strings.Join(*l, ",") }
func (l *listFlag) Set(s string) error { *l = append(*l, s); return nil }

type options struct {
	configPath string
	get        string
	puts       listFlag
	removes    listFlag
	format     string
	color      string
	upperKeys  bool
	verbose    bool
	file       string
}

func parseFlags(args []string) (*options, error) {
	var opts options
	fs := flag.NewFlagSet("boxinspect", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "configuration file (default: nearest "+config.ConfigFileName+")")
	fs.StringVar(&opts.get, "get", "", "print the value stored under this key")
	fs.Var(&opts.puts, "put", "key=value to store; value is parsed as YAML (repeatable)")
	fs.Var(&opts.removes, "remove", "key to remove (repeatable)")
	fs.StringVar(&opts.format, "format", "", "output format: inspect, yaml or json")
	fs.StringVar(&opts.color, "color", "", "colour: auto, always or never")
	fs.BoolVar(&opts.upperKeys, "upper-keys", false, "upper-case every string key")
	fs.BoolVar(&opts.verbose, "v", false, "log sizes before and after edits")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected exactly one input file, got %d", fs.NArg())
	}
	opts.file = fs.Arg(0)
	return &opts, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.color != "" {
		cfg.Output.Color = opts.color
	}
	if err := cfg.Validate("flags"); err != nil {
		return err
	}

	// The text collaborator is chosen once for the whole run.
	tx, err := text.Select(cfg.Text.Mode)
	if err != nil {
		return err
	}

	edits, err := editPipeline(opts, tx)
	if err != nil {
		return err
	}

	m, err := readDocument(opts.file, stdin)
	if err != nil {
		return err
	}
	loaded := m.Len()

	if m, err = edits.Run(m); err != nil {
		return err
	}
	if opts.verbose {
		log.Printf("%d entries loaded, %d after %d edits (text: %s)", loaded, m.Len(), edits.Len(), tx.Name())
	}

	ins := inspector{color: useColor(cfg.Output.Color, stdout)}
	if opts.get != "" {
		_, err := fmt.Fprintln(stdout, ins.format(m.Get(boxed.Str(opts.get))))
		return err
	}
	return render(stdout, m, cfg.Output.Format, ins)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.FindConfig(".")
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readDocument(path string, stdin io.Reader) (boxed.Map, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return boxed.Map{}, fmt.Errorf("reading %s: %w", path, err)
	}

	v, err := boxed.DecodeYAML(data)
	if err != nil {
		return boxed.Map{}, fmt.Errorf("%s: %w", path, err)
	}
	switch doc := v.(type) {
	case boxed.Map:
		return doc, nil
	case boxed.Option:
		if doc.IsNone() {
			return boxed.EmptyMap(), nil
		}
	}
	return boxed.Map{}, fmt.Errorf("%s: top level must be a mapping: %w", path,
		boxed.Mismatch("load", boxed.KindMap, v.Kind()))
}

// editPipeline builds the edit stages in their fixed order: puts,
// removes, key case mapping.
func editPipeline(opts *options, tx text.Text) (*pipeline.Pipeline, error) {
	p := pipeline.New()
	for _, kv := range opts.puts {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("-put %q: want key=value", kv)
		}
		v, err := boxed.DecodeYAML([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("-put %q: %w", kv, err)
		}
		p.Add(pipeline.Put(boxed.Str(key), v))
	}
	for _, key := range opts.removes {
		p.Add(pipeline.Remove(boxed.Str(key)))
	}
	if opts.upperKeys {
		p.Add(pipeline.UpperKeys(tx))
	}
	return p, nil
}
