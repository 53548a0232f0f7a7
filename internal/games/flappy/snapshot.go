package flappy

import (
	"fmt"
	"hash/fnv"
	"math"
)

// FlyerView is the drawable state of the flyer.
type FlyerView struct {
	X, Y     float64
	W, H     float64
	Velocity float64
	Alive    bool
}

// ObstacleView is the drawable state of one obstacle.
type ObstacleView struct {
	X         float64
	GapCenter float64
	GapHeight float64
	Width     float64
	Passed    bool
}

// Snapshot is the read-only view handed to the renderer each tick.
type Snapshot struct {
	State     State
	Score     int
	Ticks     uint64
	Active    bool
	End       EndReason
	WorldW    float64
	WorldH    float64
	FloorY    float64
	Flyer     *FlyerView // nil when there is no session
	Obstacles []ObstacleView
}

// Snapshot returns the current renderable state.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State:  m.state,
		WorldW: m.cfg.World.Width,
		WorldH: m.cfg.World.Height,
		FloorY: m.cfg.FloorY(),
	}
	if m.session != nil {
		m.session.fill(&snap)
	}
	return snap
}

// Snapshot returns the session's renderable state with State set to StatePlaying.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:  StatePlaying,
		WorldW: s.cfg.World.Width,
		WorldH: s.cfg.World.Height,
		FloorY: s.cfg.FloorY(),
	}
	s.fill(&snap)
	return snap
}

func (s *Session) fill(snap *Snapshot) {
	snap.Score = s.score
	snap.Ticks = s.ticks
	snap.Active = s.active
	snap.End = s.end

	f := s.flyer
	snap.Flyer = &FlyerView{
		X:        f.x,
		Y:        f.y,
		W:        f.width,
		H:        f.height,
		Velocity: f.velocity,
		Alive:    f.alive,
	}

	obs := s.field.Obstacles()
	snap.Obstacles = make([]ObstacleView, len(obs))
	for i, o := range obs {
		snap.Obstacles[i] = ObstacleView{
			X:         o.X,
			GapCenter: o.GapCenter,
			GapHeight: o.GapHeight,
			Width:     o.Width,
			Passed:    o.Passed,
		}
	}
}

// Hash returns a hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so equal hashes mean bit-identical runs.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "S:%d;%d;%d;%v;%d;", snap.State, snap.Score, snap.Ticks, snap.Active, snap.End)
	if f := snap.Flyer; f != nil {
		fmt.Fprintf(h, "F:%x:%x:%x:%v;", math.Float64bits(f.X), math.Float64bits(f.Y), math.Float64bits(f.Velocity), f.Alive)
	}
	for _, o := range snap.Obstacles {
		fmt.Fprintf(h, "O:%x:%x:%v,", math.Float64bits(o.X), math.Float64bits(o.GapCenter), o.Passed)
	}
	return h.Sum64()
}
