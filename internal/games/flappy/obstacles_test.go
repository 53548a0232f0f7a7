package flappy

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// fixedRand always returns the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func TestNewObstacleGapWithinBounds(t *testing.T) {
	cfg := config.DefaultGameConfig()
	lo, hi := cfg.GapBounds()
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 10000; i++ {
		o := NewObstacle(cfg, rng)

		require.GreaterOrEqual(t, o.GapCenter, lo)
		require.LessOrEqual(t, o.GapCenter, hi)
		require.GreaterOrEqual(t, o.TopRect().H, 0.0)
		require.GreaterOrEqual(t, o.BottomRect().H, 0.0)
		require.Equal(t, cfg.World.Width, o.X)
	}
}

func TestNewObstacleUsesInjectedRand(t *testing.T) {
	cfg := config.DefaultGameConfig()

	assert.Equal(t, 200.0, NewObstacle(cfg, fixedRand(0)).GapCenter)
	assert.Equal(t, 310.0, NewObstacle(cfg, fixedRand(0.5)).GapCenter)
}

func TestObstacleRects(t *testing.T) {
	o := Obstacle{X: 100, GapCenter: 300, GapHeight: 150, Width: 80, FloorY: 620}

	assert.Equal(t, core.NewRect(100, 0, 80, 225), o.TopRect())
	assert.Equal(t, core.NewRect(100, 375, 80, 245), o.BottomRect())
	assert.Equal(t, 180.0, o.Right())
}

func TestObstacleUpdateScrollsLeft(t *testing.T) {
	o := Obstacle{X: 100, Width: 80}
	o.Update(4, 1)
	assert.Equal(t, 96.0, o.X)
	o.Update(4, 0.5)
	assert.Equal(t, 94.0, o.X)
}

func TestObstacleCollisionInclusiveEdges(t *testing.T) {
	// Flyer box: [320, 370] x [360, 400].
	flyer := core.NewRect(320, 360, 50, 40)

	tests := []struct {
		name     string
		o        Obstacle
		expected bool
	}{
		{
			name:     "top pipe bottom touches flyer top",
			o:        Obstacle{X: 330, GapCenter: 435, GapHeight: 150, Width: 80, FloorY: 620},
			expected: true,
		},
		{
			name:     "top pipe one unit above flyer",
			o:        Obstacle{X: 330, GapCenter: 434, GapHeight: 150, Width: 80, FloorY: 620},
			expected: false,
		},
		{
			name:     "bottom pipe top touches flyer bottom",
			o:        Obstacle{X: 330, GapCenter: 325, GapHeight: 150, Width: 80, FloorY: 620},
			expected: true,
		},
		{
			name:     "bottom pipe one unit below flyer",
			o:        Obstacle{X: 330, GapCenter: 326, GapHeight: 150, Width: 80, FloorY: 620},
			expected: false,
		},
		{
			name:     "pipe leading edge touches flyer right edge",
			o:        Obstacle{X: 370, GapCenter: 310, GapHeight: 150, Width: 80, FloorY: 620},
			expected: true,
		},
		{
			name:     "pipe one unit right of flyer",
			o:        Obstacle{X: 371, GapCenter: 310, GapHeight: 150, Width: 80, FloorY: 620},
			expected: false,
		},
		{
			name:     "flyer inside the gap",
			o:        Obstacle{X: 330, GapCenter: 380, GapHeight: 150, Width: 80, FloorY: 620},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.o.CollidesWith(flyer))
		})
	}
}

func TestFieldSpawnInterval(t *testing.T) {
	cfg := config.DefaultGameConfig()
	f := NewField(cfg, fixedRand(0.5), 0)
	ms := time.Millisecond

	assert.False(t, f.MaybeSpawn(0), "no spawn at the start instant")
	assert.True(t, f.MaybeSpawn(1*ms), "first spawn right after start")
	assert.False(t, f.MaybeSpawn(1501*ms), "exactly one interval is not enough")
	assert.True(t, f.MaybeSpawn(1502*ms))
	assert.Equal(t, 2, f.Len())
}

func TestFieldFrozenDoesNotSpawn(t *testing.T) {
	f := NewField(config.DefaultGameConfig(), fixedRand(0.5), 0)
	f.Freeze()
	assert.False(t, f.MaybeSpawn(time.Hour))
	assert.Equal(t, 0, f.Len())
}

func TestFieldAdvanceAndPrune(t *testing.T) {
	f := NewField(config.DefaultGameConfig(), fixedRand(0.5), 0)
	f.obstacles = []Obstacle{
		{X: -81, Width: 80},  // right edge -1: gone
		{X: -80, Width: 80},  // right edge 0: still touching the screen
		{X: 500, Width: 80},
	}

	f.Prune()
	require.Equal(t, 2, f.Len())
	assert.Equal(t, -80.0, f.Obstacles()[0].X)
	assert.Equal(t, 500.0, f.Obstacles()[1].X)

	f.Advance(1)
	f.Prune()
	require.Equal(t, 1, f.Len())
	assert.Equal(t, 496.0, f.Obstacles()[0].X)
}

func TestFieldScoresEachObstacleOnce(t *testing.T) {
	cfg := config.DefaultGameConfig()
	flyer := NewFlyer(cfg) // box [320, 370] x [360, 400], held still

	f := NewField(cfg, fixedRand(0.75), 0) // gap center 365: [290, 440]
	require.True(t, f.MaybeSpawn(time.Millisecond))
	f.Freeze()

	total := 0
	for i := 0; f.Len() > 0; i++ {
		require.Less(t, i, 10000)
		f.Advance(1)
		f.Prune()
		hits := f.CheckCollisionsAndScore(flyer)
		require.False(t, hits.Collided)
		total += hits.Scored
	}
	assert.Equal(t, 1, total)
}

func TestFieldCollisionStopsLaterScoring(t *testing.T) {
	cfg := config.DefaultGameConfig()
	flyer := NewFlyer(cfg)

	f := NewField(cfg, fixedRand(0.5), 0)
	f.obstacles = []Obstacle{
		{X: 330, GapCenter: 200, GapHeight: 150, Width: 80, FloorY: 620}, // hits flyer
		{X: 100, GapCenter: 380, GapHeight: 150, Width: 80, FloorY: 620}, // already behind
	}

	hits := f.CheckCollisionsAndScore(flyer)
	assert.True(t, hits.Collided)
	assert.Equal(t, 0, hits.Scored)
	assert.False(t, f.Obstacles()[1].Passed)
}

func TestFieldScoresSimultaneousPasses(t *testing.T) {
	cfg := config.DefaultGameConfig()
	flyer := NewFlyer(cfg)

	f := NewField(cfg, fixedRand(0.5), 0)
	f.obstacles = []Obstacle{
		{X: 100, GapCenter: 380, GapHeight: 150, Width: 80, FloorY: 620},
		{X: 200, GapCenter: 380, GapHeight: 150, Width: 80, FloorY: 620},
	}

	assert.Equal(t, Hits{Scored: 2}, f.CheckCollisionsAndScore(flyer))
	assert.Equal(t, Hits{}, f.CheckCollisionsAndScore(flyer))
}

func TestFieldDeadFlyerDoesNotScore(t *testing.T) {
	cfg := config.DefaultGameConfig()
	flyer := NewFlyer(cfg)
	flyer.Kill()

	f := NewField(cfg, fixedRand(0.5), 0)
	f.obstacles = []Obstacle{{X: 100, GapCenter: 380, GapHeight: 150, Width: 80, FloorY: 620}}

	assert.Equal(t, 0, f.CheckCollisionsAndScore(flyer).Scored)
	assert.False(t, f.Obstacles()[0].Passed)
}
