package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "wikitext.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[pipeline]
typography = true
max_input_size = 4096

[include]
dir = "pages"

[server]
listen = "0.0.0.0:8080"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Pipeline.Typography {
		t.Fatal("typography not applied")
	}
	if cfg.Pipeline.MaxInputSize != 4096 {
		t.Fatalf("max_input_size = %d", cfg.Pipeline.MaxInputSize)
	}
	if cfg.Include.Dir != "pages" {
		t.Fatalf("include dir = %q", cfg.Include.Dir)
	}
	if cfg.Server.Listen != "0.0.0.0:8080" {
		t.Fatalf("listen = %q", cfg.Server.Listen)
	}
}

func TestLoadKeepsDefaultsForOmitted(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[pipeline]
typography = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pipeline.MaxInputSize != Default().Pipeline.MaxInputSize {
		t.Fatalf("max_input_size = %d, want default", cfg.Pipeline.MaxInputSize)
	}
	if cfg.Server.Listen != Default().Server.Listen {
		t.Fatalf("listen = %q, want default", cfg.Server.Listen)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[pipeline]
typografy = true
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a misspelled key")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `[pipeline]
typography = true
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Pipeline.Typography {
		t.Fatal("config not found from nested directory")
	}
}

func TestDiscoverWithoutManifest(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}
