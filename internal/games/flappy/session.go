// Package flappy implements the simulation of a Flappy Bird-style game: a flyer
// falls under gravity, flaps upward on demand, and must pass through the gaps of
// obstacles scrolling in from the right.
//
// The package is pure logic. It consumes abstract events and frames and exposes
// a Snapshot; the platform layer owns input polling, timing and drawing.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// EndReason records why a round stopped.
type EndReason int

const (
	EndNone      EndReason = iota // Round still running
	EndCollision                  // Flyer touched an obstacle
	EndFloor                      // Flyer hit the floor
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndCollision:
		return "collision"
	case EndFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Session is exactly one play-through: a flyer, its obstacle field and a score.
type Session struct {
	cfg    config.GameConfig
	flyer  *Flyer
	field  *Field
	score  int
	active bool
	end    EndReason
	seed   int64
	start  time.Duration
	ticks  uint64
}

// NewSession validates cfg and starts a round at time start, drawing gap
// positions from a PRNG seeded with seed.
func NewSession(cfg config.GameConfig, seed int64, start time.Duration) (*Session, error) {
	s, err := NewSessionWithRand(cfg, rand.New(rand.NewSource(seed)), start)
	if err != nil {
		return nil, err
	}
	s.seed = seed
	return s, nil
}

// NewSessionWithRand is NewSession with an explicit randomness source.
func NewSessionWithRand(cfg config.GameConfig, rng Rand, start time.Duration) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		cfg:    cfg,
		flyer:  NewFlyer(cfg),
		field:  NewField(cfg, rng, start),
		active: true,
		start:  start,
	}, nil
}

// Update advances the round by one frame. It is a no-op once the round has ended.
// Order: flap, spawn, scroll, integrate the flyer, prune, then collide and score.
// A collision or a floor impact ends the round; that happens once and is final.
func (s *Session) Update(frame core.Frame, flap bool) {
	if !s.active {
		return
	}
	s.ticks++

	if flap && s.flyer.Alive() {
		s.flyer.Flap()
	}

	s.field.MaybeSpawn(frame.Now)
	s.field.Advance(frame.DT)
	s.flyer.Update(frame.DT)
	s.field.Prune()

	hits := s.field.CheckCollisionsAndScore(s.flyer)
	s.score += hits.Scored

	switch {
	case hits.Collided:
		s.flyer.Kill()
		s.finish(EndCollision)
	case !s.flyer.Alive():
		s.finish(EndFloor)
	}
}

func (s *Session) finish(reason EndReason) {
	s.active = false
	s.end = reason
	s.field.Freeze()
}

// Score returns the number of obstacles passed.
func (s *Session) Score() int { return s.score }

// Active reports whether the round is still running.
func (s *Session) Active() bool { return s.active }

// EndReason returns why the round ended, or EndNone while it runs.
func (s *Session) EndReason() EndReason { return s.end }

// Seed returns the PRNG seed; zero for sessions built with NewSessionWithRand.
func (s *Session) Seed() int64 { return s.seed }

// Start returns the clock time at which the round began.
func (s *Session) Start() time.Duration { return s.start }

// Ticks returns how many updates ran while the round was active.
func (s *Session) Ticks() uint64 { return s.ticks }

// Flyer returns the session's flyer.
func (s *Session) Flyer() *Flyer { return s.flyer }

// Field returns the session's obstacle field.
func (s *Session) Field() *Field { return s.field }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.GameConfig { return s.cfg }
