package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the shipped game configuration.
func Default() GameConfig {
	return GameConfig{
		Layout: LayoutConfig{
			FrameWidth:      1280,
			FrameHeight:     720,
			MarginX:         70,
			MarginTop:       70,
			HandSpaceBottom: 150,
			CellSize:        26,
		},
		Food: FoodConfig{
			BlockCells:    3,
			GrowthPerFood: 2,
			EatFlashMS:    350,
		},
		Timing: TimingConfig{
			TickIntervalMS:  120,
			SignalLossMS:    600,
			MaxCatchUpSteps: 3,
			PollRate:        33,
		},
		Input: InputConfig{
			DeadzoneCells: 0.55,
			PointerTTLMS:  250,
		},
	}
}
