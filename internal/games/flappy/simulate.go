package flappy

import (
	"time"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// RecordedFrame is one frame of a recorded round. Now is relative to the start
// of the round.
type RecordedFrame struct {
	Now  time.Duration
	DT   float64
	Flap bool
}

// Simulate replays recorded frames against a fresh session with the same seed
// and returns the session in its final state. Frames after the round ends are
// ignored, matching what the live game does.
func Simulate(cfg config.GameConfig, seed int64, frames []RecordedFrame) (*Session, error) {
	s, err := NewSession(cfg, seed, 0)
	if err != nil {
		return nil, err
	}
	for i, f := range frames {
		if !s.Active() {
			break
		}
		s.Update(core.Frame{Tick: uint64(i + 1), Now: f.Now, DT: f.DT}, f.Flap)
	}
	return s, nil
}

// Pilot decides whether to flap given the current session state.
type Pilot func(s *Session) bool

// Autopilot flaps whenever the flyer's bottom edge sinks into the lower part of
// the next obstacle's gap (or below mid-field when none is ahead) and it is not
// already rising. One flap lifts the flyer about 80 units with the default
// physics, which keeps it inside a 150 unit gap.
func Autopilot(s *Session) bool {
	f := s.Flyer()
	target := s.cfg.FloorY() / 2
	for _, o := range s.Field().Obstacles() {
		if o.Right() >= f.X() {
			target = o.GapCenter + o.GapHeight*0.4
			break
		}
	}
	return f.Y()+f.height > target && f.Velocity() >= 0
}

// Run plays a headless round with a fixed timestep, letting pilot decide each
// frame, until the round ends or maxTicks frames ran. It returns the session and
// the frames fed to it, ready to be stored as a replay.
func Run(cfg config.GameConfig, seed int64, pilot Pilot, maxTicks int) (*Session, []RecordedFrame, error) {
	s, err := NewSession(cfg, seed, 0)
	if err != nil {
		return nil, nil, err
	}
	clock := core.NewFixedClock(cfg.Timing.TickRate)
	frames := make([]RecordedFrame, 0, maxTicks)

	for i := 0; i < maxTicks && s.Active(); i++ {
		frame := clock.Next(time.Time{})
		flap := pilot != nil && pilot(s)
		s.Update(frame, flap)
		frames = append(frames, RecordedFrame{Now: frame.Now, DT: frame.DT, Flap: flap})
	}
	return s, frames, nil
}
