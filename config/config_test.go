package config

import (
	"os"
	"path/filepath"
	"testing"

	"midiwire/midi"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	if policy != midi.ChannelStrict {
		t.Errorf("expected strict policy, got %v", policy)
	}
	if cfg.Debug {
		t.Error("expected debug off by default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.ChannelPolicy = "wrap"
	cfg.Debug = true
	cfg.Output.Palette = "/tmp/plasma.gpl"
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, ".config", AppName, "config.json")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
	if p, _ := loaded.Policy(); p != midi.ChannelWrap {
		t.Errorf("expected wrap policy, got %v", p)
	}
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", AppName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"channelPolicy":"saturate"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for unknown channel policy")
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", AppName)
	os.MkdirAll(dir, 0755)
	os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{`), 0644)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config")
	}
}
