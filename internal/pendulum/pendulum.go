// Package pendulum implements the single-pendulum simulation model: a bob on
// a massless arm swinging about a fixed pivot, advanced one tick per rendered
// frame, with a grab mode where the bob tracks the pointer directly.
package pendulum

import (
	"fmt"
	"math"

	"github.com/san-kum/pendlab/internal/vec"
)

const (
	// HitRadius is the grab/hit-test radius around the bob center. It equals
	// the bob's outer visual radius, so a press anywhere on the disc grabs it.
	HitRadius = 28.0

	// BobRadius and BobInnerRadius are the two-tone disc radii.
	BobRadius      = 28.0
	BobInnerRadius = 25.0

	DefaultRadius  = 200.0
	DefaultAngle   = 1.0
	DefaultMass    = 1.0
	DefaultGravity = 0.5

	// GravityStep and MassStep are the per-keypress adjustment increments.
	GravityStep = 0.1
	MassStep    = 1.0
)

type Pendulum struct {
	Origin   *vec.Vec2
	Position *vec.Vec2

	// Angle is the angular displacement from vertical rest, in radians.
	// Positive angles swing toward +x.
	Angle float64

	AngularVelocity     float64
	AngularAcceleration float64

	R float64 // arm length, pixel units
	M float64 // mass; affects damping only
	G float64 // gravity scale

	Grabbed bool
}

// New creates a pendulum pivoting at (x, y) with arm length r, released from
// the default angle at rest.
func New(x, y, r float64) *Pendulum {
	return &Pendulum{
		Origin:   vec.New(x, y),
		Position: vec.New(0, 0),
		Angle:    DefaultAngle,
		R:        r,
		M:        DefaultMass,
		G:        DefaultGravity,
	}
}

// Step advances the simulation by one tick. Velocity is updated before the
// angle (semi-implicit Euler) and damped multiplicatively; the damping factor
// shrinks linearly with mass. Mass never enters the torque term. The order of
// operations is observable through the readouts and must not be rearranged.
//
// R = 0 divides by zero here and the resulting NaN propagates through later
// frames; callers that care use Valid or a session MinRadius option.
func (p *Pendulum) Step() {
	damping := 0.995 - 0.0003*p.M/3.0

	p.AngularAcceleration = -p.G * math.Sin(p.Angle) / p.R
	p.AngularVelocity += p.AngularAcceleration
	p.AngularVelocity *= damping
	p.Angle += p.AngularVelocity

	p.Position.Set(p.R*math.Sin(p.Angle), p.R*math.Cos(p.Angle))
	p.Position.Add(p.Origin)
}

// BeginGrab puts the pendulum in grab mode. Callers gate on HitTest.
func (p *Pendulum) BeginGrab() {
	p.Grabbed = true
}

// UpdateGrab snaps the bob to the pointer and re-derives arm length and angle
// from the pointer position, with zero velocity. The angle convention matches
// Step's position formula, so releasing resumes swinging smoothly from the
// dragged configuration.
func (p *Pendulum) UpdateGrab(pointer *vec.Vec2) {
	diff := p.Origin.Clone().Sub(pointer)

	p.Position.Set(pointer.X, pointer.Y)
	p.R = vec.Dist(p.Origin, p.Position)
	p.AngularAcceleration = 0
	p.AngularVelocity = 0
	p.Angle = math.Atan2(-diff.Y, diff.X) - math.Pi/2
}

// EndGrab releases the bob at its current angle with zero velocity.
func (p *Pendulum) EndGrab() {
	p.Grabbed = false
	p.AngularVelocity = 0
}

// HitTest reports whether the point lands on the bob, strictly inside
// HitRadius of its center.
func (p *Pendulum) HitTest(pointer *vec.Vec2) bool {
	return vec.Dist(p.Position, pointer) < HitRadius
}

// AdjustGravity adds delta to gravity. No bounds; negative gravity flips the
// restoring torque.
func (p *Pendulum) AdjustGravity(delta float64) {
	p.G += delta
}

// AdjustMass adds delta to mass. No bounds.
func (p *Pendulum) AdjustMass(delta float64) {
	p.M += delta
}

// Reset restores arm length and angle only. Velocity, acceleration, mass and
// gravity are deliberately left alone: the gesture re-releases the bob from
// the start position under whatever parameters the user has dialed in.
func (p *Pendulum) Reset() {
	p.R = DefaultRadius
	p.Angle = DefaultAngle
}

// FullReset restores every field to its construction value, keeping only the
// pivot. It is a separate operation; Reset keeps its partial semantics.
func (p *Pendulum) FullReset() {
	p.Reset()
	p.AngularVelocity = 0
	p.AngularAcceleration = 0
	p.M = DefaultMass
	p.G = DefaultGravity
	p.Grabbed = false
}

// Valid reports whether all numeric state is finite. The simulation itself
// never checks this; it exists for tests and optional boundary validation.
func (p *Pendulum) Valid() bool {
	for _, v := range []float64{
		p.Angle, p.AngularVelocity, p.AngularAcceleration,
		p.R, p.M, p.G,
		p.Position.X, p.Position.Y,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p *Pendulum) GetParams() map[string]float64 {
	return map[string]float64{
		"gravity": p.G,
		"mass":    p.M,
		"radius":  p.R,
	}
}

func (p *Pendulum) SetParam(name string, value float64) error {
	switch name {
	case "gravity":
		p.G = value
	case "mass":
		p.M = value
	case "radius":
		p.R = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
