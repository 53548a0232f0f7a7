package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultGameConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultGameConfig().Validate())
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultGameConfig()

	assert.Equal(t, 620.0, cfg.FloorY())

	lo, hi := cfg.GapBounds()
	assert.Equal(t, 200.0, lo)
	assert.Equal(t, 420.0, hi)

	x, y := cfg.FlyerStart()
	assert.Equal(t, 320.0, x)
	assert.Equal(t, 360.0, y)

	assert.Equal(t, int64(1500), cfg.Obstacles.SpawnInterval().Milliseconds())
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.5\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Physics.Gravity)
	assert.Equal(t, -5.0, cfg.Physics.FlapImpulse)
	assert.Equal(t, 150.0, cfg.Obstacles.GapHeight)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("physics: [unterminated"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Obstacles.GapHeight = 180

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		field  string
	}{
		{
			name:   "gap taller than playable height",
			mutate: func(c *GameConfig) { c.Obstacles.GapHeight = 620 },
			field:  "obstacles.gap_height",
		},
		{
			name:   "margin too small for gap",
			mutate: func(c *GameConfig) { c.Obstacles.Margin = 50 },
			field:  "obstacles.margin",
		},
		{
			name:   "empty gap center range",
			mutate: func(c *GameConfig) { c.Obstacles.Margin = 400 },
			field:  "obstacles.margin",
		},
		{
			name:   "upward gravity",
			mutate: func(c *GameConfig) { c.Physics.Gravity = -1 },
			field:  "physics.gravity",
		},
		{
			name:   "downward flap",
			mutate: func(c *GameConfig) { c.Physics.FlapImpulse = 3 },
			field:  "physics.flap_impulse",
		},
		{
			name:   "floor fills the world",
			mutate: func(c *GameConfig) { c.World.FloorHeight = 720 },
			field:  "world.floor_height",
		},
		{
			name:   "zero spawn interval",
			mutate: func(c *GameConfig) { c.Obstacles.SpawnIntervalMS = 0 },
			field:  "obstacles.spawn_interval_ms",
		},
		{
			name:   "flyer off screen",
			mutate: func(c *GameConfig) { c.Flyer.XRatio = 1.5 },
			field:  "flyer.x_ratio",
		},
		{
			name:   "zero tick rate",
			mutate: func(c *GameConfig) { c.Timing.TickRate = 0 },
			field:  "timing.tick_rate",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))

			var verr ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("obstacles:\n  gap_height: 170\n"), 0o600))

	cfg, src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src)
	assert.Equal(t, 170.0, cfg.Obstacles.GapHeight)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, src, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Equal(t, SourceCustom, src)
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("obstacles:\n  gap_height: 900\n"), 0o600))

	_, _, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, src)
	assert.Equal(t, DefaultGameConfig(), cfg)
}

func TestLoadPrefersLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "flappy.yaml"), []byte("physics:\n  scroll_speed: 6\n"), 0o600))
	t.Chdir(dir)

	cfg, src, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Equal(t, 6.0, cfg.Physics.ScrollSpeed)
}
