package flappy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Obstacles.GapHeight = cfg.FloorY()

	s, err := NewSession(cfg, 1, 0)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSessionFallsToFloor(t *testing.T) {
	// Flyer starts at y = 0 and only gravity acts. y(n) = 0.075*n*(n+1)
	// first exceeds 580 at n = 88; the first obstacle is still far right then.
	cfg := config.DefaultGameConfig()
	s, err := NewSession(cfg, 3, 0)
	require.NoError(t, err)
	s.flyer.y = 0

	clock := core.NewFixedClock(cfg.Timing.TickRate)
	for n := 1; n <= 87; n++ {
		s.Update(clock.Next(time.Time{}), false)
		require.True(t, s.Active(), "tick %d", n)
	}

	s.Update(clock.Next(time.Time{}), false)
	assert.False(t, s.Active())
	assert.Equal(t, EndFloor, s.EndReason())
	assert.Equal(t, uint64(88), s.Ticks())

	before := s.Snapshot().Hash()
	for i := 0; i < 100; i++ {
		s.Update(clock.Next(time.Time{}), i%2 == 0)
		require.False(t, s.Active())
	}
	assert.Equal(t, before, s.Snapshot().Hash(), "an ended session must not change")
	assert.Equal(t, 580.0, s.Flyer().Y())
}

func TestSessionPassesSingleObstacle(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s, err := NewSessionWithRand(cfg, fixedRand(0.75), 0) // gap [290, 440]
	require.NoError(t, err)

	clock := core.NewFixedClock(cfg.Timing.TickRate)
	hold := func() {
		s.flyer.y = 360 // box [360, 400], inside the gap
		s.flyer.velocity = 0
	}

	hold()
	s.Update(clock.Next(time.Time{}), false)
	require.Equal(t, 1, s.Field().Len(), "first obstacle spawns on the first tick")
	s.Field().Freeze()

	for i := 0; s.Field().Len() > 0; i++ {
		require.Less(t, i, 10000)
		hold()
		s.Update(clock.Next(time.Time{}), false)
		require.True(t, s.Active(), "flyer inside the gap must never collide")
	}

	assert.Equal(t, 1, s.Score())
}

func TestSessionCollisionEndsRound(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s, err := NewSessionWithRand(cfg, fixedRand(0), 0)
	require.NoError(t, err)

	s.field.obstacles = append(s.field.obstacles, Obstacle{
		X: 330, GapCenter: 200, GapHeight: 150, Width: 80, FloorY: cfg.FloorY(),
	})

	s.Update(core.Frame{Tick: 1, Now: time.Millisecond, DT: 1}, false)

	assert.False(t, s.Active())
	assert.Equal(t, EndCollision, s.EndReason())
	assert.False(t, s.Flyer().Alive())
	assert.False(t, s.Field().MaybeSpawn(time.Hour), "field stops spawning after the round")
}

func TestSessionFlapMovesUp(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s, err := NewSession(cfg, 1, 0)
	require.NoError(t, err)

	y0 := s.Flyer().Y()
	s.Update(core.Frame{Tick: 1, Now: time.Millisecond, DT: 1}, true)

	assert.Less(t, s.Flyer().Y(), y0)
	assert.Equal(t, cfg.Physics.FlapImpulse+cfg.Physics.Gravity, s.Flyer().Velocity())
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := config.DefaultGameConfig()

	s1, frames1, err := Run(cfg, 12345, Autopilot, 3000)
	require.NoError(t, err)
	s2, frames2, err := Run(cfg, 12345, Autopilot, 3000)
	require.NoError(t, err)

	assert.Equal(t, s1.Snapshot().Hash(), s2.Snapshot().Hash())
	assert.Equal(t, s1.Score(), s2.Score())
	assert.Equal(t, frames1, frames2)
}

func TestSimulateReproducesRun(t *testing.T) {
	cfg := config.DefaultGameConfig()

	live, frames, err := Run(cfg, 777, Autopilot, 3000)
	require.NoError(t, err)

	replayed, err := Simulate(cfg, 777, frames)
	require.NoError(t, err)

	assert.Equal(t, live.Snapshot().Hash(), replayed.Snapshot().Hash())
	assert.Equal(t, live.Score(), replayed.Score())
	assert.Equal(t, live.Ticks(), replayed.Ticks())
}

func TestAutopilotScores(t *testing.T) {
	s, _, err := Run(config.DefaultGameConfig(), 7, Autopilot, 3000)
	require.NoError(t, err)
	assert.Positive(t, s.Score())
}

func TestRunWithoutPilotHitsFloor(t *testing.T) {
	s, frames, err := Run(config.DefaultGameConfig(), 1, nil, 3000)
	require.NoError(t, err)

	assert.False(t, s.Active())
	assert.Equal(t, EndFloor, s.EndReason())
	assert.Len(t, frames, 54)
}
