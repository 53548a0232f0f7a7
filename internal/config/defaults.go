package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:       1280,
			Height:      720,
			FloorHeight: 100,
		},
		Physics: PhysicsConfig{
			Gravity:     0.15,
			FlapImpulse: -5,
			ScrollSpeed: 4,
		},
		Obstacles: ObstaclesConfig{
			Width:           80,
			GapHeight:       150,
			Margin:          200,
			SpawnIntervalMS: 1500,
		},
		Flyer: FlyerConfig{
			XRatio: 0.25,
			YRatio: 0.5,
			Width:  50,
			Height: 40,
		},
		Timing: TimingConfig{
			TickRate: 120,
			MaxDT:    3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
