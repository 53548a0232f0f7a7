package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

// ReplaySaver persists finished rounds. *storage.Store implements it.
type ReplaySaver interface {
	SaveReplay(r storage.Replay) (int64, error)
}

// Recorder observes a Machine and stores every round as a replay once it ends.
// Save failures are logged and never interrupt play.
type Recorder struct {
	saver      ReplaySaver
	logger     *log.Logger
	configYAML string

	recording bool
	seed      int64
	frames    []storage.Frame
	lastID    int64
}

// NewRecorder creates a recorder for rounds played with cfg.
// A nil saver disables persistence but transitions are still logged.
func NewRecorder(saver ReplaySaver, cfg config.GameConfig, logger *log.Logger) (*Recorder, error) {
	data, err := config.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{
		saver:      saver,
		logger:     logger,
		configYAML: string(data),
	}, nil
}

// OnTransition implements flappy.Observer.
func (r *Recorder) OnTransition(from, to flappy.State, s *flappy.Session) {
	r.logger.Debug("state transition", "from", from, "to", to)

	switch {
	case to == flappy.StatePlaying && s != nil:
		r.recording = true
		r.seed = s.Seed()
		r.frames = r.frames[:0]
		r.logger.Info("round started", "seed", s.Seed())

	case from == flappy.StatePlaying && r.recording:
		r.recording = false
		if s != nil {
			r.logger.Info("round ended",
				"score", s.Score(),
				"ticks", s.Ticks(),
				"reason", s.EndReason(),
			)
			r.save(s)
		}
	}
}

// OnFrame implements flappy.Observer.
func (r *Recorder) OnFrame(s *flappy.Session, frame core.Frame, flap bool) {
	if !r.recording {
		return
	}
	r.frames = append(r.frames, storage.Frame{
		NowNanos: int64(frame.Now - s.Start()),
		DT:       frame.DT,
		Flap:     flap,
	})
}

func (r *Recorder) save(s *flappy.Session) {
	if r.saver == nil || len(r.frames) == 0 {
		return
	}
	frames := make([]storage.Frame, len(r.frames))
	copy(frames, r.frames)

	id, err := r.saver.SaveReplay(storage.Replay{
		Seed:       r.seed,
		ConfigYAML: r.configYAML,
		EndReason:  s.EndReason().String(),
		Frames:     frames,
	})
	if err != nil {
		r.logger.Error("cannot save replay", "err", err)
		return
	}
	r.lastID = id
	r.logger.Info("replay saved", "id", id, "frames", len(frames))
}

// LastReplayID returns the ID of the most recently saved replay, or 0.
func (r *Recorder) LastReplayID() int64 {
	return r.lastID
}

// Frames returns the frames recorded for the current or last round.
func (r *Recorder) Frames() []storage.Frame {
	out := make([]storage.Frame, len(r.frames))
	copy(out, r.frames)
	return out
}
