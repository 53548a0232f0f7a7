// Package config provides YAML-based game configuration loading and validation.
// All simulation constants live here and are passed to the game explicitly.
package config

import "time"

// GameConfig contains every tunable of the simulation.
// Distances are world units (the playfield is World.Width x World.Height),
// velocities are world units per nominal frame.
type GameConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Flyer     FlyerConfig     `yaml:"flyer"`
	Timing    TimingConfig    `yaml:"timing"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorHeight float64 `yaml:"floor_height"`
}

// PhysicsConfig defines gravity and motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per frame^2
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set on flap (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Obstacle speed per frame
}

// ObstaclesConfig defines obstacle geometry and spawn rate.
type ObstaclesConfig struct {
	Width           float64 `yaml:"width"`
	GapHeight       float64 `yaml:"gap_height"`
	Margin          float64 `yaml:"margin"` // Minimum distance of the gap center from ceiling and floor
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// FlyerConfig defines the player body.
type FlyerConfig struct {
	XRatio float64 `yaml:"x_ratio"` // Fixed x as a fraction of world width
	YRatio float64 `yaml:"y_ratio"` // Start y as a fraction of world height
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines the nominal frame the physics constants are tuned for.
type TimingConfig struct {
	TickRate int     `yaml:"tick_rate"` // Nominal frames per second
	MaxDT    float64 `yaml:"max_dt"`    // Cap on a single variable-timestep step, in frames
}

// FloorY returns the y-coordinate of the floor line.
func (c GameConfig) FloorY() float64 {
	return c.World.Height - c.World.FloorHeight
}

// GapBounds returns the inclusive range the gap center is drawn from.
func (c GameConfig) GapBounds() (lo, hi float64) {
	return c.Obstacles.Margin, c.World.Height - c.World.FloorHeight - c.Obstacles.Margin
}

// SpawnInterval returns the time between obstacle spawns.
func (c ObstaclesConfig) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMS) * time.Millisecond
}

// FlyerStart returns the flyer's initial top-left position.
func (c GameConfig) FlyerStart() (x, y float64) {
	return c.World.Width * c.Flyer.XRatio, c.World.Height * c.Flyer.YRatio
}
