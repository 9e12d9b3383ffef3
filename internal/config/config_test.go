package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.CurrencySymbol != "₽" {
		t.Errorf("currency = %q, want ₽", cfg.General.CurrencySymbol)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists() = true before any Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.CurrencySymbol = "$"
	cfg.General.DataDir = "/tmp/splyyt-test"
	cfg.Appearance.Theme = "tokyo-night"

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
	if got != cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestStorePathHonorsOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/var/data/splyyt"
	want := filepath.Join("/var/data/splyyt", "splyyt.db")
	if got := cfg.StorePath(); got != want {
		t.Fatalf("StorePath = %q, want %q", got, want)
	}
}

func TestStorePathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	cfg := DefaultConfig()
	want := filepath.Join(dir, "splyyt", "splyyt.db")
	if got := cfg.StorePath(); got != want {
		t.Fatalf("StorePath = %q, want %q", got, want)
	}
}
