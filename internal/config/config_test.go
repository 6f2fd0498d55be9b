package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg != Default() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("file values are read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deckdelve.yml")
		if err := os.WriteFile(path, []byte("seed: 42\nno_color: true\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Seed != 42 || !cfg.NoColor {
			t.Errorf("unexpected settings: %+v", cfg)
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deckdelve.yml")
		if err := os.WriteFile(path, []byte("seed: [oops\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatal("expected a parse error")
		}
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DECKDELVE_SEED", "1337")
	t.Setenv("NO_COLOR", "1")

	cfg := FromEnv(Default())
	if cfg.Seed != 1337 {
		t.Errorf("expected seed 1337, got %d", cfg.Seed)
	}
	if !cfg.NoColor {
		t.Error("expected NoColor to be set")
	}
}
