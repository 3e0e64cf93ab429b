package pendulum

import "github.com/san-kum/pendlab/internal/vec"

// Readouts are the five numeric values shown next to the pendulum.
// Acceleration carries the raw angular acceleration; renderers scale it by
// ten for display.
type Readouts struct {
	Gravity      float64
	Angle        float64
	Acceleration float64
	Velocity     float64
	Mass         float64
}

// Snapshot is everything a renderer needs to draw one frame: the arm from
// Origin to Bob, the two-tone disc at Bob, and the readouts.
type Snapshot struct {
	Origin   vec.Vec2
	Bob      vec.Vec2
	R        float64
	Grabbed  bool
	Readouts Readouts
}

// Snapshot copies the drawable state. The returned value does not alias the
// model, so a renderer may hold it across a mutation.
func (p *Pendulum) Snapshot() Snapshot {
	return Snapshot{
		Origin:  *p.Origin,
		Bob:     *p.Position,
		R:       p.R,
		Grabbed: p.Grabbed,
		Readouts: Readouts{
			Gravity:      p.G,
			Angle:        p.Angle,
			Acceleration: p.AngularAcceleration,
			Velocity:     p.AngularVelocity,
			Mass:         p.M,
		},
	}
}
