// Package session wires a pendulum model to whatever drives it: a GUI window,
// a terminal view, or a scripted headless run. It owns the input cache and
// applies the frame ordering contract (events first, then one physics tick,
// then render).
package session

import (
	"math"

	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/vec"
)

// Action is a discrete input gesture. Hosts map their own key identities onto
// these; the session does not know about keyboards.
type Action int

const (
	ActionNone Action = iota
	ActionGravityUp
	ActionGravityDown
	ActionMassDown
	ActionMassUp
	ActionReset
	ActionFullReset
)

// Host is the capability a render/event loop needs from the simulation. Any
// implementation can drive a pendulum, which keeps the core testable without
// a window.
type Host interface {
	OnFrame() pendulum.Snapshot
	OnPointerMove(x, y float64)
	OnPointerDown()
	OnPointerUp()
	OnKey(a Action)
}

// Options control the optional validation boundary. Zero values keep input
// fully permissive: non-finite pointer coordinates flow straight into the
// model and the grab radius may collapse to zero.
type Options struct {
	// RejectNonFinite drops pointer events with NaN or Inf coordinates.
	RejectNonFinite bool

	// MinRadius, when positive, is the smallest arm length a grab may set.
	MinRadius float64
}

// Session owns one pendulum and the last-known pointer position.
type Session struct {
	p       *pendulum.Pendulum
	pointer *vec.Vec2
	opts    Options
}

func New(p *pendulum.Pendulum) *Session {
	return NewWithOptions(p, Options{})
}

func NewWithOptions(p *pendulum.Pendulum, opts Options) *Session {
	return &Session{
		p:       p,
		pointer: vec.New(0, 0),
		opts:    opts,
	}
}

// Pendulum exposes the owned model for hosts that render beyond the snapshot
// (trails, param panels).
func (s *Session) Pendulum() *pendulum.Pendulum {
	return s.p
}

// OnFrame advances the model by one tick and returns the drawable state.
// While grabbed the physics tick is replaced by the pointer-follow update.
func (s *Session) OnFrame() pendulum.Snapshot {
	if s.p.Grabbed {
		s.p.UpdateGrab(s.pointer)
		if s.opts.MinRadius > 0 && s.p.R < s.opts.MinRadius {
			// re-derive the bob position so it stays on the clamped arm
			s.p.R = s.opts.MinRadius
			s.p.Position.Set(s.p.R*math.Sin(s.p.Angle), s.p.R*math.Cos(s.p.Angle))
			s.p.Position.Add(s.p.Origin)
		}
	} else {
		s.p.Step()
	}
	return s.p.Snapshot()
}

// OnPointerMove records the pointer position. It does not mutate the model;
// a grabbed bob catches up on the next OnFrame.
func (s *Session) OnPointerMove(x, y float64) {
	if s.opts.RejectNonFinite && (!finite(x) || !finite(y)) {
		return
	}
	s.pointer.Set(x, y)
}

// OnPointerDown grabs the bob when the press lands on it.
func (s *Session) OnPointerDown() {
	if s.p.HitTest(s.pointer) {
		s.p.BeginGrab()
	}
}

// OnPointerUp releases when the pointer is over the bob. A grabbed bob sits
// exactly under the pointer, so release always succeeds mid-drag. A release
// over a free-swinging bob also zeroes its velocity.
func (s *Session) OnPointerUp() {
	if s.p.HitTest(s.pointer) {
		s.p.EndGrab()
	}
}

// OnKey applies one discrete action. Unknown actions are ignored.
func (s *Session) OnKey(a Action) {
	switch a {
	case ActionGravityUp:
		s.p.AdjustGravity(pendulum.GravityStep)
	case ActionGravityDown:
		s.p.AdjustGravity(-pendulum.GravityStep)
	case ActionMassDown:
		s.p.AdjustMass(-pendulum.MassStep)
	case ActionMassUp:
		s.p.AdjustMass(pendulum.MassStep)
	case ActionReset:
		s.p.Reset()
	case ActionFullReset:
		s.p.FullReset()
	}
}

// Pointer returns the cached pointer position.
func (s *Session) Pointer() (x, y float64) {
	return s.pointer.X, s.pointer.Y
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
