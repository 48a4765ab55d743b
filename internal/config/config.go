// Package config provides YAML-based configuration loading for the
// finger-snake engine and its terminal host.
package config

import (
	"time"

	"github.com/handplay/fingersnake/internal/snake"
)

// GameConfig contains every tuning value of the engine plus the host-side
// input settings. Durations are expressed in milliseconds in the YAML.
type GameConfig struct {
	Layout LayoutConfig `yaml:"layout"`
	Food   FoodConfig   `yaml:"food"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
}

// LayoutConfig defines the playfield pixel budget and board margins.
type LayoutConfig struct {
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
	MarginX     int `yaml:"margin_x"`
	MarginTop   int `yaml:"margin_top"`
	// Extra bottom space reserved so the hand-tracking region stays clear
	// of the board.
	HandSpaceBottom int `yaml:"hand_space_bottom"`
	CellSize        int `yaml:"cell_size"`
}

// FoodConfig defines food block size and the growth award.
type FoodConfig struct {
	BlockCells    int `yaml:"block_cells"`
	GrowthPerFood int `yaml:"growth_per_food"`
	EatFlashMS    int `yaml:"eat_flash_ms"`
}

// TimingConfig defines the logical tick and the pause hysteresis.
type TimingConfig struct {
	TickIntervalMS  int `yaml:"tick_interval_ms"`
	SignalLossMS    int `yaml:"signal_loss_ms"`
	MaxCatchUpSteps int `yaml:"max_catchup_steps"`
	PollRate        int `yaml:"poll_rate"`
}

// InputConfig defines pointer handling parameters.
type InputConfig struct {
	// Deadzone radius as a fraction of the cell size.
	DeadzoneCells float64 `yaml:"deadzone_cells"`
	// How long a mouse/tracker observation stays current before the engine
	// sees "no detection".
	PointerTTLMS int `yaml:"pointer_ttl_ms"`
}

// Engine maps the loaded configuration onto the engine's Config struct.
// Validation happens in the engine at construction time.
func (g GameConfig) Engine() snake.Config {
	return snake.Config{
		MarginX:         g.Layout.MarginX,
		MarginTop:       g.Layout.MarginTop,
		HandSpaceBottom: g.Layout.HandSpaceBottom,
		CellSize:        g.Layout.CellSize,

		FoodCells:     g.Food.BlockCells,
		GrowthPerFood: g.Food.GrowthPerFood,
		EatFlash:      time.Duration(g.Food.EatFlashMS) * time.Millisecond,

		TickInterval:    time.Duration(g.Timing.TickIntervalMS) * time.Millisecond,
		SignalLossGrace: time.Duration(g.Timing.SignalLossMS) * time.Millisecond,
		MaxCatchUpSteps: g.Timing.MaxCatchUpSteps,

		DeadzoneCells: g.Input.DeadzoneCells,
	}
}

// PointerTTL returns the tracker freshness window.
func (g GameConfig) PointerTTL() time.Duration {
	return time.Duration(g.Input.PointerTTLMS) * time.Millisecond
}

// Validate rejects contradictory tuning values. The same check runs at
// engine construction; calling it here lets a broken config file fail
// before any terminal setup.
func (g GameConfig) Validate() error {
	return g.Engine().Validate()
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the movement speed for a difficulty preset. Unknown
// or empty presets leave the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.TickIntervalMS = 150
	case DifficultyNormal:
		cfg.Timing.TickIntervalMS = 120
	case DifficultyHard:
		cfg.Timing.TickIntervalMS = 90
	}
}
