package flappy

import (
	"time"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Rand is the randomness obstacles draw gap positions from.
// *math/rand.Rand satisfies it; tests inject fixed values.
type Rand interface {
	Float64() float64
}

// Obstacle is a top/bottom pipe pair with a passable gap, scrolling left.
type Obstacle struct {
	X         float64 // Left edge
	GapCenter float64 // Vertical midpoint of the opening
	GapHeight float64
	Width     float64
	FloorY    float64
	Passed    bool // Set once when the trailing edge crosses the flyer
}

// NewObstacle creates an obstacle at the right edge of the world with a gap
// center drawn uniformly from the configured bounds.
func NewObstacle(cfg config.GameConfig, rng Rand) Obstacle {
	lo, hi := cfg.GapBounds()
	return Obstacle{
		X:         cfg.World.Width,
		GapCenter: lo + rng.Float64()*(hi-lo),
		GapHeight: cfg.Obstacles.GapHeight,
		Width:     cfg.Obstacles.Width,
		FloorY:    cfg.FloorY(),
	}
}

// Update scrolls the obstacle left.
func (o *Obstacle) Update(speed, dt float64) {
	o.X -= speed * dt
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// TopRect returns the collision rectangle of the upper pipe, from the ceiling to the gap.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, o.Width, o.GapCenter-o.GapHeight/2)
}

// BottomRect returns the collision rectangle of the lower pipe, from the gap to the floor.
func (o Obstacle) BottomRect() core.Rect {
	top := o.GapCenter + o.GapHeight/2
	return core.NewRect(o.X, top, o.Width, o.FloorY-top)
}

// CollidesWith reports whether r touches either pipe. Touching edges count.
func (o Obstacle) CollidesWith(r core.Rect) bool {
	return r.Intersects(o.TopRect()) || r.Intersects(o.BottomRect())
}

// Hits summarizes one collision/scoring pass over the field.
type Hits struct {
	Collided bool
	Scored   int
}

// Field owns the live obstacles in spawn order. Because every obstacle scrolls at
// the same speed, spawn order is also descending x order.
type Field struct {
	obstacles []Obstacle
	cfg       config.GameConfig
	rng       Rand
	interval  time.Duration
	lastSpawn time.Duration
	frozen    bool
}

// NewField creates an empty field. The first obstacle spawns on the first tick
// after start.
func NewField(cfg config.GameConfig, rng Rand, start time.Duration) *Field {
	interval := cfg.Obstacles.SpawnInterval()
	return &Field{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
		rng:       rng,
		interval:  interval,
		lastSpawn: start - interval,
	}
}

// MaybeSpawn appends a new obstacle when more than one spawn interval has
// elapsed since the last one. Returns true if it spawned.
func (f *Field) MaybeSpawn(now time.Duration) bool {
	if f.frozen || now-f.lastSpawn <= f.interval {
		return false
	}
	f.obstacles = append(f.obstacles, NewObstacle(f.cfg, f.rng))
	f.lastSpawn = now
	return true
}

// Advance scrolls every obstacle by dt frames.
func (f *Field) Advance(dt float64) {
	for i := range f.obstacles {
		f.obstacles[i].Update(f.cfg.Physics.ScrollSpeed, dt)
	}
}

// Prune drops obstacles whose trailing edge has left the screen, preserving order.
func (f *Field) Prune() {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// CheckCollisionsAndScore tests each obstacle against the flyer in spawn order.
// An obstacle that collides signals Collided; otherwise, if its trailing edge is
// left of the flyer and it has not been passed yet, it is marked passed and
// scores one point. Nothing scores while the flyer is dead, including obstacles
// after a collision in the same pass.
func (f *Field) CheckCollisionsAndScore(flyer *Flyer) Hits {
	var hits Hits
	box := flyer.Rect()
	alive := flyer.Alive()

	for i := range f.obstacles {
		o := &f.obstacles[i]
		if o.CollidesWith(box) {
			hits.Collided = true
			alive = false
			continue
		}
		if alive && !o.Passed && o.Right() < flyer.X() {
			o.Passed = true
			hits.Scored++
		}
	}
	return hits
}

// Freeze stops further spawning.
func (f *Field) Freeze() {
	f.frozen = true
}

// Obstacles returns the live obstacles. Callers must not modify the slice.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}
