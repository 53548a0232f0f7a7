package core

import "time"

// Frame is the timing information for a single tick.
// Now is monotonic time since the clock started; DT is the step length in
// nominal frames (1.0 at the nominal tick rate).
type Frame struct {
	Tick uint64
	Now  time.Duration
	DT   float64
}

// Clock produces one Frame per tick.
type Clock interface {
	// Next advances the clock. wall is the time at which the tick fired; fixed
	// clocks ignore it.
	Next(wall time.Time) Frame
}

// FixedClock advances by exactly one nominal frame per tick regardless of
// wall-clock time. Runs driven by it are reproducible.
type FixedClock struct {
	step time.Duration
	tick uint64
}

// NewFixedClock creates a fixed-step clock for the given tick rate.
func NewFixedClock(tickRate int) *FixedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedClock{step: time.Second / time.Duration(tickRate)}
}

// Next returns the next frame.
func (c *FixedClock) Next(time.Time) Frame {
	c.tick++
	return Frame{
		Tick: c.tick,
		Now:  time.Duration(c.tick) * c.step,
		DT:   1,
	}
}

// WallClock measures elapsed wall time between ticks and expresses it in nominal
// frames, capped at maxDT so a stalled terminal cannot tunnel the flyer through
// an obstacle.
type WallClock struct {
	step  time.Duration
	maxDT float64
	start time.Time
	last  time.Time
	tick  uint64
}

// NewWallClock creates a variable-step clock for the given nominal tick rate.
func NewWallClock(tickRate int, maxDT float64) *WallClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxDT <= 0 {
		maxDT = 1
	}
	return &WallClock{step: time.Second / time.Duration(tickRate), maxDT: maxDT}
}

// Next returns the next frame measured against wall.
func (c *WallClock) Next(wall time.Time) Frame {
	c.tick++
	if c.start.IsZero() {
		c.start = wall
		c.last = wall
		return Frame{Tick: c.tick, Now: 0, DT: 1}
	}

	elapsed := wall.Sub(c.last)
	if elapsed < 0 {
		elapsed = 0
	}
	c.last = wall

	return Frame{
		Tick: c.tick,
		Now:  wall.Sub(c.start),
		DT:   ClampF(float64(elapsed)/float64(c.step), 0, c.maxDT),
	}
}
