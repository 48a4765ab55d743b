package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must describe the same
	// configuration, or the search-order fallbacks change behavior.
	var fromYAML GameConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &fromYAML); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	if fromYAML != Default() {
		t.Errorf("embedded defaults diverge from Default():\nyaml: %+v\ncode: %+v",
			fromYAML, Default())
	}
}

func TestEngineMapping(t *testing.T) {
	cfg := Default()
	eng := cfg.Engine()

	if eng.CellSize != 26 || eng.MarginX != 70 || eng.MarginTop != 70 || eng.HandSpaceBottom != 150 {
		t.Errorf("layout mapping wrong: %+v", eng)
	}
	if eng.FoodCells != 3 || eng.GrowthPerFood != 2 {
		t.Errorf("food mapping wrong: %+v", eng)
	}
	if eng.TickInterval != 120*time.Millisecond {
		t.Errorf("expected 120ms tick, got %v", eng.TickInterval)
	}
	if eng.SignalLossGrace != 600*time.Millisecond {
		t.Errorf("expected 600ms grace, got %v", eng.SignalLossGrace)
	}
	if eng.EatFlash != 350*time.Millisecond {
		t.Errorf("expected 350ms eat flash, got %v", eng.EatFlash)
	}
	if eng.MaxCatchUpSteps != 3 {
		t.Errorf("expected 3 catch-up steps, got %d", eng.MaxCatchUpSteps)
	}
	if eng.DeadzoneCells != 0.55 {
		t.Errorf("expected 0.55 deadzone, got %v", eng.DeadzoneCells)
	}

	if cfg.PointerTTL() != 250*time.Millisecond {
		t.Errorf("expected 250ms pointer TTL, got %v", cfg.PointerTTL())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := `
layout:
  frame_width: 640
  frame_height: 480
  margin_x: 10
  margin_top: 10
  hand_space_bottom: 20
  cell_size: 16
food:
  block_cells: 2
  growth_per_food: 1
  eat_flash_ms: 100
timing:
  tick_interval_ms: 200
  signal_loss_ms: 900
  max_catchup_steps: 2
  poll_rate: 20
input:
  deadzone_cells: 0.4
  pointer_ttl_ms: 300
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Layout.FrameWidth != 640 || cfg.Layout.CellSize != 16 {
		t.Errorf("layout not loaded: %+v", cfg.Layout)
	}
	if cfg.Timing.TickIntervalMS != 200 || cfg.Timing.PollRate != 20 {
		t.Errorf("timing not loaded: %+v", cfg.Timing)
	}
	if cfg.Input.DeadzoneCells != 0.4 {
		t.Errorf("input not loaded: %+v", cfg.Input)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("layout: ["), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := `
layout:
  cell_size: 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for a config with zero cell size")
	}
}

func TestApplyPreset(t *testing.T) {
	cases := []struct {
		preset DifficultyPreset
		wantMS int
	}{
		{DifficultyEasy, 150},
		{DifficultyNormal, 120},
		{DifficultyHard, 90},
		{"", 120},        // empty leaves the default untouched
		{"unknown", 120}, // unknown too
	}

	for _, tc := range cases {
		cfg := Default()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Timing.TickIntervalMS != tc.wantMS {
			t.Errorf("preset %q: expected %dms tick, got %dms",
				tc.preset, tc.wantMS, cfg.Timing.TickIntervalMS)
		}
	}
}
