package core

// RuntimeConfig contains host-side parameters passed to the platform layer.
// The engine's own tuning lives in the YAML game config; this only carries
// what depends on the running terminal session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	PollRate int   // Driving poll rate in Hz (default 33)
	Seed     int64 // RNG seed for deterministic food placement, 0 = time-based
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		PollRate: 33,
		Seed:     0,
	}
}
