package core

// TimingMode selects how tick lengths are measured.
type TimingMode string

const (
	TimingFixed    TimingMode = "fixed"    // constant dt, reproducible
	TimingVariable TimingMode = "variable" // dt from measured wall time
)

// RuntimeConfig contains terminal-level settings passed to the front end.
type RuntimeConfig struct {
	ScreenW  int        // Screen width in characters
	ScreenH  int        // Screen height in characters
	TickRate int        // Simulation ticks per second
	Seed     int64      // RNG seed; 0 means derive from time in the platform layer
	Timing   TimingMode // Fixed or variable timestep
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 120,
		Seed:     0,
		Timing:   TimingFixed,
	}
}

// NewClock builds the clock matching the configured timing mode. nominalRate is
// the frame rate the physics constants are tuned for, which may differ from
// TickRate (how often the terminal redraws).
func (c RuntimeConfig) NewClock(nominalRate int, maxDT float64) Clock {
	if c.Timing == TimingVariable {
		return NewWallClock(nominalRate, maxDT)
	}
	return NewFixedClock(nominalRate)
}
