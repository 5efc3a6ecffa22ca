package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gonewx/bonnie/pkg/types"
)

func TestDefaultBonnieConfigIsValid(t *testing.T) {
	cfg := DefaultBonnieConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	kinds, err := cfg.EnabledKinds()
	if err != nil {
		t.Fatalf("EnabledKinds() error: %v", err)
	}
	if !reflect.DeepEqual(kinds, types.AllStateKinds) {
		t.Errorf("Default enabled kinds: got %v, want %v", kinds, types.AllStateKinds)
	}
}

// TestShippedConfigMatchesDefaults data/bonnie.yaml 与 DefaultBonnieConfig 保持一致
func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadBonnieConfig("../../data/bonnie.yaml")
	if err != nil {
		t.Fatalf("LoadBonnieConfig() error: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultBonnieConfig()) {
		t.Errorf("data/bonnie.yaml drifted from DefaultBonnieConfig():\n got %+v\nwant %+v", cfg, DefaultBonnieConfig())
	}
}

func TestParseBonnieConfigKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := ParseBonnieConfig([]byte("walk:\n  margin: 200\nchase:\n  catchDistance: 40\n"))
	if err != nil {
		t.Fatalf("ParseBonnieConfig() error: %v", err)
	}

	if cfg.Walk.Margin != 200 {
		t.Errorf("Walk.Margin: got %d, want 200", cfg.Walk.Margin)
	}
	if cfg.Chase.CatchDistance != 40 {
		t.Errorf("Chase.CatchDistance: got %v, want 40", cfg.Chase.CatchDistance)
	}
	if cfg.Idle.WakeDistance != 70 {
		t.Errorf("Idle.WakeDistance should keep default 70, got %v", cfg.Idle.WakeDistance)
	}
	if cfg.Bonnie.CenterOffset != types.Pt(90, 147) {
		t.Errorf("Bonnie.CenterOffset should keep default, got %v", cfg.Bonnie.CenterOffset)
	}
}

func TestParseBonnieConfigRejectsBadYAML(t *testing.T) {
	if _, err := ParseBonnieConfig([]byte("timer: [1, 2")); err == nil {
		t.Error("Expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *BonnieConfig)
		wantErr string
	}{
		{"timer max <= min", func(c *BonnieConfig) { c.Timer.Max = c.Timer.Min }, "timer range"},
		{"zero base speed", func(c *BonnieConfig) { c.Movement.BaseSpeedRatio = 0 }, "baseSpeedRatio"},
		{"negative chase multiplier", func(c *BonnieConfig) { c.Movement.Multipliers.Chasing = -1 }, "multipliers"},
		{"negative margin", func(c *BonnieConfig) { c.Walk.Margin = -5 }, "margin"},
		{"no teach images", func(c *BonnieConfig) { c.Teach.Images = nil }, "teach.images"},
		{"no meow sounds", func(c *BonnieConfig) { c.Meow.Sounds = nil }, "meow.sounds"},
		{"unknown state", func(c *BonnieConfig) { c.States.Enabled = []string{"Idle", "Dancing"} }, "unknown state"},
		{"single state", func(c *BonnieConfig) { c.States.Enabled = []string{"Idle", "idle"} }, "at least 2"},
		{"zero fallback monitor", func(c *BonnieConfig) { c.Monitor.FallbackWidth = 0 }, "fallback monitor"},
		{"zero bonnie size", func(c *BonnieConfig) { c.Bonnie.Width = 0 }, "window size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBonnieConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := DefaultBonnieConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "baseSpeedRatio: 0.15") {
		t.Errorf("Marshalled YAML should use camelCase keys:\n%s", data)
	}

	cfg, err := ParseBonnieConfig(data)
	if err != nil {
		t.Fatalf("ParseBonnieConfig(Marshal()) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBonnieConfig()) {
		t.Error("Marshal/Parse should round-trip the default config")
	}
}
