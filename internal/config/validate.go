package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ValidationError describes a single offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks that the configuration describes a playable world.
// Obstacle generation depends on a non-empty gap-center range whose gaps stay
// on screen, so a gap that does not fit is rejected here instead of clamped later.
func (c GameConfig) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.World.Width <= 0 {
		bad("world.width", "must be positive, got %g", c.World.Width)
	}
	if c.World.Height <= 0 {
		bad("world.height", "must be positive, got %g", c.World.Height)
	}
	if c.World.FloorHeight < 0 || c.World.FloorHeight >= c.World.Height {
		bad("world.floor_height", "must be in [0, %g), got %g", c.World.Height, c.World.FloorHeight)
	}

	if c.Physics.Gravity <= 0 {
		bad("physics.gravity", "must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.FlapImpulse >= 0 {
		bad("physics.flap_impulse", "must be negative (upward), got %g", c.Physics.FlapImpulse)
	}
	if c.Physics.ScrollSpeed <= 0 {
		bad("physics.scroll_speed", "must be positive, got %g", c.Physics.ScrollSpeed)
	}

	playable := c.FloorY()
	if c.Obstacles.Width <= 0 {
		bad("obstacles.width", "must be positive, got %g", c.Obstacles.Width)
	}
	if c.Obstacles.GapHeight <= 0 {
		bad("obstacles.gap_height", "must be positive, got %g", c.Obstacles.GapHeight)
	}
	if c.Obstacles.GapHeight >= playable {
		bad("obstacles.gap_height", "%g does not fit the playable height %g", c.Obstacles.GapHeight, playable)
	}
	if c.Obstacles.Margin < c.Obstacles.GapHeight/2 {
		bad("obstacles.margin", "%g is less than half the gap height %g", c.Obstacles.Margin, c.Obstacles.GapHeight)
	}
	if lo, hi := c.GapBounds(); lo > hi {
		bad("obstacles.margin", "gap center range [%g, %g] is empty", lo, hi)
	}
	if c.Obstacles.SpawnIntervalMS <= 0 {
		bad("obstacles.spawn_interval_ms", "must be positive, got %d", c.Obstacles.SpawnIntervalMS)
	}

	if c.Flyer.Width <= 0 || c.Flyer.Height <= 0 {
		bad("flyer", "size must be positive, got %gx%g", c.Flyer.Width, c.Flyer.Height)
	}
	if c.Flyer.Height >= playable {
		bad("flyer.height", "%g does not fit the playable height %g", c.Flyer.Height, playable)
	}
	if c.Flyer.XRatio <= 0 || c.Flyer.XRatio >= 1 {
		bad("flyer.x_ratio", "must be in (0, 1), got %g", c.Flyer.XRatio)
	}
	if c.Flyer.YRatio < 0 || c.Flyer.YRatio >= 1 {
		bad("flyer.y_ratio", "must be in [0, 1), got %g", c.Flyer.YRatio)
	}

	if c.Timing.TickRate <= 0 {
		bad("timing.tick_rate", "must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.MaxDT <= 0 {
		bad("timing.max_dt", "must be positive, got %g", c.Timing.MaxDT)
	}

	return errors.Join(errs...)
}
