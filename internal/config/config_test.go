package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig_ValidFull(t *testing.T) {
	yaml := `
text:
  mode: ascii
output:
  color: never
  format: json
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Text.Mode != TextModeASCII {
		t.Errorf("text.mode = %q, want %q", cfg.Text.Mode, TextModeASCII)
	}
	if cfg.Output.Color != ColorNever {
		t.Errorf("output.color = %q, want %q", cfg.Output.Color, ColorNever)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("output.format = %q, want %q", cfg.Output.Format, FormatJSON)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Errorf("got %+v, want %+v", *cfg, *want)
	}
	if cfg.Text.Mode != TextModeUnicode {
		t.Errorf("text.mode = %q, want %q", cfg.Text.Mode, TextModeUnicode)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad mode", "text:\n  mode: latin1\n", "text.mode"},
		{"bad color", "output:\n  color: sometimes\n", "output.color"},
		{"bad format", "output:\n  format: xml\n", "output.format"},
		{"bad yaml", "text: [", "parsing test.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml), "test.yaml")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFindConfig_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, "boxed.yml")
	if err := os.WriteFile(cfgPath, []byte("text:\n  mode: ascii\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("found = %q, want %q", found, cfgPath)
	}

	cfg, err := LoadConfig(found)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Text.Mode != TextModeASCII {
		t.Errorf("text.mode = %q, want ascii", cfg.Text.Mode)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("BOXED_TEXT_MODE", "ascii")
	t.Setenv("BOXED_FORMAT", "yaml")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Text.Mode != TextModeASCII {
		t.Errorf("text.mode = %q, want %q", cfg.Text.Mode, TextModeASCII)
	}
	if cfg.Output.Format != FormatYAML {
		t.Errorf("output.format = %q, want %q", cfg.Output.Format, FormatYAML)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("output.color = %q, want the default kept", cfg.Output.Color)
	}
}

func TestApplyEnv_Unset(t *testing.T) {
	for _, name := range []string{"BOXED_TEXT_MODE", "BOXED_COLOR", "BOXED_FORMAT"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults", *cfg)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv("BOXED_COLOR", "sometimes")
	err := Default().ApplyEnv()
	if err == nil || !strings.Contains(err.Error(), "environment: output.color") {
		t.Errorf("err = %v, want an output.color error", err)
	}
}
