package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
)

// Options configures a game model.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Saver   ReplaySaver // nil disables replay recording
	Logger  *log.Logger
}

// Model is the Bubble Tea model that runs the game.
// Keys are queued as they arrive and drained once per tick.
type Model struct {
	machine  *flappy.Machine
	recorder *Recorder
	clock    core.Clock
	queue    *core.EventQueue
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	recorder, err := NewRecorder(opts.Saver, opts.Game, logger)
	if err != nil {
		return nil, err
	}

	seeds := func() int64 { return time.Now().UnixNano() }
	if opts.Runtime.Seed != 0 {
		// A fixed seed repeats the same course every round.
		seed := opts.Runtime.Seed
		seeds = func() int64 { return seed }
	}

	machine, err := flappy.NewMachine(opts.Game,
		flappy.WithSeedFunc(seeds),
		flappy.WithObserver(recorder),
	)
	if err != nil {
		return nil, err
	}

	h := help.New()
	h.ShowAll = false

	cfg := opts.Runtime
	return &Model{
		machine:  machine,
		recorder: recorder,
		clock:    cfg.NewClock(opts.Game.Timing.TickRate, opts.Game.Timing.MaxDT),
		queue:    core.NewEventQueue(),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:     DefaultKeyMap(),
		help:     h,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.queue.Push(m.keys.MapKey(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// Bottom row is the help footer.
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick drains queued events and advances the state machine by one frame.
func (m *Model) handleTick(wall time.Time) (tea.Model, tea.Cmd) {
	frame := m.clock.Next(wall)
	state := m.machine.Tick(frame, m.queue.Drain())

	if state == flappy.StateQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.machine.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Machine returns the state machine driven by the model.
func (m *Model) Machine() *flappy.Machine { return m.machine }

// Recorder returns the replay recorder attached to the machine.
func (m *Model) Recorder() *Recorder { return m.recorder }

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
