package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "€" {
		t.Errorf("currency = %q, want €", cfg.General.Currency)
	}
	if cfg.General.DefaultMonths != 6 {
		t.Errorf("default months = %d, want 6", cfg.General.DefaultMonths)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.General.DBPath = "/tmp/elsewhere.db"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Currency != "$" {
		t.Errorf("currency = %q, want $", got.General.Currency)
	}
	if DBPath(got) != "/tmp/elsewhere.db" {
		t.Errorf("DBPath = %q, want override", DBPath(got))
	}
}

func TestDBPath_DefaultUsesXDGData(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got := DBPath(Config{})
	want := filepath.Join(dir, "stuffer", "budget.db")
	if got != want {
		t.Fatalf("DBPath = %q, want %q", got, want)
	}
}
