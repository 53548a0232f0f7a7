package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Flyer is the player-controlled body. Its x never changes; it falls under
// gravity and is pushed up by flaps.
type Flyer struct {
	x, y     float64
	velocity float64 // positive = downward
	width    float64
	height   float64
	alive    bool

	gravity float64
	impulse float64
	floorY  float64
}

// NewFlyer creates a flyer at the configured start position with zero velocity.
func NewFlyer(cfg config.GameConfig) *Flyer {
	x, y := cfg.FlyerStart()
	return &Flyer{
		x:       x,
		y:       y,
		width:   cfg.Flyer.Width,
		height:  cfg.Flyer.Height,
		alive:   true,
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.FlapImpulse,
		floorY:  cfg.FloorY(),
	}
}

// Flap replaces the current velocity with the flap impulse.
func (f *Flyer) Flap() {
	f.velocity = f.impulse
}

// Update integrates one step of dt frames (semi-implicit Euler: velocity first,
// then position) and applies the ceiling and floor clamps.
// A dead flyer does not move.
func (f *Flyer) Update(dt float64) {
	if !f.alive {
		return
	}

	f.velocity += f.gravity * dt
	f.y += f.velocity * dt

	if f.y < 0 {
		f.y = 0
		f.velocity = 0
	}

	if f.y+f.height > f.floorY {
		f.y = f.floorY - f.height
		f.alive = false
	}
}

// Kill marks the flyer dead, freezing it in place.
func (f *Flyer) Kill() {
	f.alive = false
}

// Rect returns the flyer's bounding box.
func (f *Flyer) Rect() core.Rect {
	return core.NewRect(f.x, f.y, f.width, f.height)
}

func (f *Flyer) X() float64        { return f.x }
func (f *Flyer) Y() float64        { return f.y }
func (f *Flyer) Velocity() float64 { return f.velocity }
func (f *Flyer) Alive() bool       { return f.alive }
