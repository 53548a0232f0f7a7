package flappy

import (
	"time"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// State is the top-level lifecycle state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
	StateQuit // terminal
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Observer is notified of lifecycle changes. Methods run synchronously inside Tick.
type Observer interface {
	// OnTransition is called after the state changes. s is the session that was
	// current when the transition happened, or nil.
	OnTransition(from, to State, s *Session)
	// OnFrame is called for every frame fed to an active session.
	OnFrame(s *Session, frame core.Frame, flap bool)
}

// SeedFunc supplies the PRNG seed for each new session.
type SeedFunc func() int64

// Option configures a Machine.
type Option func(*Machine)

// WithSeedFunc sets the seed source for new sessions.
func WithSeedFunc(fn SeedFunc) Option {
	return func(m *Machine) {
		m.seeds = fn
	}
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		m.observers = append(m.observers, o)
	}
}

// Machine drives the Start -> Playing -> GameOver -> Start loop until Quit.
// It owns at most one Session at a time.
type Machine struct {
	cfg       config.GameConfig
	state     State
	session   *Session
	seeds     SeedFunc
	observers []Observer
}

// NewMachine validates cfg and returns a machine in the Start state.
func NewMachine(cfg config.GameConfig, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{
		cfg:   cfg,
		state: StateStart,
		seeds: func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Tick processes one frame's events and advances the simulation.
// Quit wins over everything else in the same tick. Otherwise at most one
// transition happens per tick:
//   - Start: Flap or Confirm begins a round.
//   - Playing: flaps go to the session. The tick after the round ends, the
//     machine moves to GameOver, so the final frame is rendered first.
//   - GameOver: Confirm returns to Start and discards the session.
func (m *Machine) Tick(frame core.Frame, events []core.Event) State {
	if m.state == StateQuit {
		return m.state
	}
	if core.Has(events, core.EventQuit) {
		m.transition(StateQuit)
		m.session = nil
		return m.state
	}

	switch m.state {
	case StateStart:
		if core.Has(events, core.EventFlap) || core.Has(events, core.EventConfirm) {
			// cfg was validated in NewMachine, so this cannot fail.
			s, err := NewSession(m.cfg, m.seeds(), frame.Now)
			if err != nil {
				return m.state
			}
			m.session = s
			m.transition(StatePlaying)
		}

	case StatePlaying:
		if !m.session.Active() {
			m.transition(StateGameOver)
			return m.state
		}
		flap := core.Has(events, core.EventFlap)
		m.session.Update(frame, flap)
		for _, o := range m.observers {
			o.OnFrame(m.session, frame, flap)
		}

	case StateGameOver:
		if core.Has(events, core.EventConfirm) {
			m.transition(StateStart)
			m.session = nil
		}
	}

	return m.state
}

func (m *Machine) transition(to State) {
	from := m.state
	m.state = to
	for _, o := range m.observers {
		o.OnTransition(from, to, m.session)
	}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Session returns the current session, or nil in Start and Quit.
func (m *Machine) Session() *Session { return m.session }

// Done reports whether the machine reached Quit.
func (m *Machine) Done() bool { return m.state == StateQuit }

// Config returns the machine's configuration.
func (m *Machine) Config() config.GameConfig { return m.cfg }
