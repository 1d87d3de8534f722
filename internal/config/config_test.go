package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if cfg.Speed() != 100*time.Millisecond {
		t.Errorf("expected 100ms speed, got %v", cfg.Speed())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if cfg.BST.URL != "" {
		t.Errorf("expected in process bst by default, got %s", cfg.BST.URL)
	}

	lim := cfg.Limits()
	if lim.MinValue != 10 || lim.MaxValue != 400 || lim.MaxLength != 50 {
		t.Errorf("unexpected limits %+v", lim)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	data := []byte("algorithm: quick\nplayback:\n  speed_ms: 250\nsearch:\n  target: 7\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Algorithm != "quick" {
		t.Errorf("expected quick, got %s", cfg.Algorithm)
	}
	if cfg.Playback.SpeedMs != 250 {
		t.Errorf("expected speed 250, got %d", cfg.Playback.SpeedMs)
	}
	if cfg.Playback.MaxSpeedMs != DefaultMaxSpeedMs {
		t.Errorf("expected default max speed to survive, got %d", cfg.Playback.MaxSpeedMs)
	}
	if cfg.Search.Target != 7 {
		t.Errorf("expected target 7, got %d", cfg.Search.Target)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("playback:\n  min_speed_ms: 500\n  max_speed_ms: 100\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for inverted speed bounds")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Array = []int{3, 2, 1}
	cfg.BST.Timeout = 2 * time.Second

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(back.Array) != 3 || back.Array[0] != 3 {
		t.Errorf("expected array to survive, got %v", back.Array)
	}
	if back.BST.Timeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", back.BST.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min speed", func(c *Config) { c.Playback.MinSpeedMs = 0 }},
		{"inverted values", func(c *Config) { c.Input.MinValue = 500 }},
		{"default size too large", func(c *Config) { c.Input.DefaultSize = 1000 }},
		{"inverted bst range", func(c *Config) { c.BST.MinValue = 1000 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("binary", "present")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Target != 7 {
		t.Errorf("expected target 7, got %d", p.Target)
	}

	cfg := DefaultConfig()
	p.Apply(cfg)
	if cfg.Search.Target != 7 || len(cfg.Array) != 5 {
		t.Errorf("preset not applied: %+v", cfg)
	}
	cfg.Array[0] = 99
	if p.Array[0] == 99 {
		t.Error("Apply shared the preset array")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("bubble", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "reversed") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("quick")
	if len(presets) != 3 || presets[0] != "constant" {
		t.Errorf("expected sorted quick presets, got %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}
