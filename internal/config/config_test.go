package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Spacing != 1 || cfg.MinLines != 1 || cfg.MaxLines != 0 {
		t.Fatalf("Default() = %+v", cfg)
	}
	if cfg.DisplayedLines() != math.MaxInt {
		t.Fatalf("DisplayedLines() = %d, want unbounded", cfg.DisplayedLines())
	}
}

func TestLoad_MissingFile_UsesDefaults(t *testing.T) {
	t.Setenv("MSGSTACK_TRANSCRIPT", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != path {
		t.Fatalf("cfg.Source = %q, want %q", cfg.Source, path)
	}
	if cfg.Spacing != 1 {
		t.Fatalf("cfg.Spacing = %d, want 1", cfg.Spacing)
	}
}

func TestLoad_FromTOML(t *testing.T) {
	t.Setenv("MSGSTACK_TRANSCRIPT", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`
spacing = 2
max_lines = 7
min_lines = 0
rtl = true
transcript = "/tmp/chat.jsonl"

[padding]
top = 1
left = -3
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Spacing != 2 || cfg.MaxLines != 7 || !cfg.RTL {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.MinLines != 1 {
		t.Fatalf("cfg.MinLines = %d, want clamped to 1", cfg.MinLines)
	}
	if cfg.Padding != (Padding{Top: 1}) {
		t.Fatalf("cfg.Padding = %+v, want top=1 only", cfg.Padding)
	}
	if cfg.Transcript != "/tmp/chat.jsonl" {
		t.Fatalf("cfg.Transcript = %q", cfg.Transcript)
	}
	if cfg.DisplayedLines() != 7 {
		t.Fatalf("DisplayedLines() = %d, want 7", cfg.DisplayedLines())
	}
}

func TestLoad_EnvOverridesTranscript(t *testing.T) {
	t.Setenv("MSGSTACK_TRANSCRIPT", "/tmp/env.jsonl")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Transcript != "/tmp/env.jsonl" {
		t.Fatalf("cfg.Transcript = %q, want env value", cfg.Transcript)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("spacing = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyKVOverrides(t *testing.T) {
	cfg := ApplyKVOverrides(Default(), []string{
		"spacing=3",
		"max_lines=-4",
		"padding=2",
		"padding.right=5",
		"rtl=true",
		"transcript = /tmp/x.jsonl",
		"spacing=oops",
		"novalue",
	})
	if cfg.Spacing != 3 {
		t.Fatalf("cfg.Spacing = %d, want 3", cfg.Spacing)
	}
	if cfg.MaxLines != 0 {
		t.Fatalf("cfg.MaxLines = %d, want 0", cfg.MaxLines)
	}
	if cfg.Padding != (Padding{Top: 2, Left: 2, Bottom: 2, Right: 5}) {
		t.Fatalf("cfg.Padding = %+v", cfg.Padding)
	}
	if !cfg.RTL || cfg.Transcript != "/tmp/x.jsonl" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("MSGSTACK_TRANSCRIPT", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Spacing = 4
	cfg.MaxLines = 9
	cfg.Padding = Padding{Left: 1, Right: 1}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Spacing != 4 || got.MaxLines != 9 || got.Padding != cfg.Padding {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSaveNormalizesAndLeavesNoTempFiles(t *testing.T) {
	t.Setenv("MSGSTACK_TRANSCRIPT", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	cfg := Default()
	cfg.Spacing = -3
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Spacing != 0 {
		t.Fatalf("spacing = %d, want 0", got.Spacing)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only config.toml, got %d entries", len(entries))
	}
}
