package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balance.toml")
	if err := os.WriteFile(path, []byte("ant_hp = 999\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AntHP != 999 {
		t.Fatalf("AntHP = %d, want 999", cfg.AntHP)
	}
	if cfg.QueenHP != Default().QueenHP {
		t.Fatalf("unmentioned key QueenHP changed: got %d, want %d", cfg.QueenHP, Default().QueenHP)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/path/balance.toml"); err == nil {
		t.Fatal("expected an error loading a missing file")
	}
}
