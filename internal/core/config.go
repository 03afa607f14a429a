package core

// RuntimeConfig contains configuration passed to the simulation frontends.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal frontend)
	ScreenH  int   // Screen height in characters (terminal frontend)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the nominal seconds per frame for the tick rate.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
