package session

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/pendlab/internal/pendulum"
)

func newSession() *Session {
	return New(pendulum.New(400, 0, 200))
}

func TestPressOutsideBobIgnored(t *testing.T) {
	s := newSession()
	s.OnFrame()

	s.OnPointerMove(10, 10)
	s.OnPointerDown()

	if s.Pendulum().Grabbed {
		t.Error("press far from bob must not grab")
	}
}

func TestGrabDragRelease(t *testing.T) {
	s := newSession()
	snap := s.OnFrame()

	// press on the bob
	s.OnPointerMove(snap.Bob.X, snap.Bob.Y)
	s.OnPointerDown()
	if !s.Pendulum().Grabbed {
		t.Fatal("press on bob must grab")
	}

	// drag: bob snaps to pointer on the next frame, motion zeroed
	s.OnPointerMove(500, 250)
	snap = s.OnFrame()
	if snap.Bob.X != 500 || snap.Bob.Y != 250 {
		t.Errorf("bob should follow pointer, got (%f, %f)", snap.Bob.X, snap.Bob.Y)
	}
	if snap.Readouts.Velocity != 0 || snap.Readouts.Acceleration != 0 {
		t.Error("motion must be zero while grabbed")
	}

	// release over the bob, which is exactly under the pointer
	s.OnPointerUp()
	if s.Pendulum().Grabbed {
		t.Error("release over bob must end the grab")
	}
}

func TestDragStretchesArm(t *testing.T) {
	s := newSession()
	snap := s.OnFrame()

	s.OnPointerMove(snap.Bob.X, snap.Bob.Y)
	s.OnPointerDown()
	s.OnPointerMove(400, 350)
	snap = s.OnFrame()

	if math.Abs(snap.R-350) > 1e-9 {
		t.Errorf("arm should stretch to 350, got %f", snap.R)
	}
}

// Release over a free-swinging bob zeroes its velocity even though nothing
// was grabbed.
func TestReleaseOverFreeBobZeroesVelocity(t *testing.T) {
	s := newSession()
	var snap pendulum.Snapshot
	for i := 0; i < 30; i++ {
		snap = s.OnFrame()
	}
	if s.Pendulum().AngularVelocity == 0 {
		t.Fatal("expected the bob to be moving")
	}

	s.OnPointerMove(snap.Bob.X, snap.Bob.Y)
	s.OnPointerUp()

	if s.Pendulum().AngularVelocity != 0 {
		t.Error("release on bob must zero velocity even when not grabbed")
	}
}

func TestReleaseAwayFromBobKeepsSwing(t *testing.T) {
	s := newSession()
	for i := 0; i < 30; i++ {
		s.OnFrame()
	}
	vel := s.Pendulum().AngularVelocity

	s.OnPointerMove(0, 0)
	s.OnPointerUp()

	if s.Pendulum().AngularVelocity != vel {
		t.Error("release away from bob must not touch velocity")
	}
}

func TestKeyActions(t *testing.T) {
	s := newSession()
	p := s.Pendulum()

	s.OnKey(ActionGravityUp)
	if math.Abs(p.G-(pendulum.DefaultGravity+0.1)) > 1e-12 {
		t.Errorf("expected g=%f, got %f", pendulum.DefaultGravity+0.1, p.G)
	}
	s.OnKey(ActionGravityDown)
	s.OnKey(ActionGravityDown)
	if math.Abs(p.G-(pendulum.DefaultGravity-0.1)) > 1e-12 {
		t.Errorf("expected g=%f, got %f", pendulum.DefaultGravity-0.1, p.G)
	}

	s.OnKey(ActionMassUp)
	if p.M != pendulum.DefaultMass+1 {
		t.Errorf("expected m=%f, got %f", pendulum.DefaultMass+1, p.M)
	}
	s.OnKey(ActionMassDown)
	s.OnKey(ActionMassDown)
	if p.M != pendulum.DefaultMass-1 {
		t.Errorf("expected m=%f, got %f", pendulum.DefaultMass-1, p.M)
	}

	p.R = 77
	p.Angle = 2.5
	s.OnKey(ActionReset)
	if p.R != pendulum.DefaultRadius || p.Angle != pendulum.DefaultAngle {
		t.Error("reset action must restore geometry")
	}

	s.OnKey(ActionNone) // ignored
}

func TestEventOrderWithinFrame(t *testing.T) {
	s := newSession()
	snap := s.OnFrame()

	// multiple moves before the frame: last one wins
	s.OnPointerMove(snap.Bob.X, snap.Bob.Y)
	s.OnPointerDown()
	s.OnPointerMove(100, 100)
	s.OnPointerMove(300, 300)

	snap = s.OnFrame()
	if snap.Bob.X != 300 || snap.Bob.Y != 300 {
		t.Errorf("last pointer move must win, got (%f, %f)", snap.Bob.X, snap.Bob.Y)
	}
}

func TestRejectNonFinitePointer(t *testing.T) {
	s := NewWithOptions(pendulum.New(400, 0, 200), Options{RejectNonFinite: true})

	s.OnPointerMove(123, 45)
	s.OnPointerMove(math.NaN(), 10)
	s.OnPointerMove(10, math.Inf(1))

	x, y := s.Pointer()
	if x != 123 || y != 45 {
		t.Errorf("non-finite moves must be dropped, pointer at (%f, %f)", x, y)
	}
}

func TestMinRadiusClamp(t *testing.T) {
	s := NewWithOptions(pendulum.New(400, 0, 200), Options{MinRadius: 5})
	snap := s.OnFrame()

	s.OnPointerMove(snap.Bob.X, snap.Bob.Y)
	s.OnPointerDown()
	s.OnPointerMove(400, 0) // drag onto the pivot
	snap = s.OnFrame()

	if snap.R != 5 {
		t.Errorf("expected clamped radius 5, got %f", snap.R)
	}
	if !s.Pendulum().Valid() {
		t.Error("clamped session must stay finite")
	}

	// the bob must sit on the clamped arm, not at the raw pointer
	p := s.Pendulum()
	wantX := p.Origin.X + snap.R*math.Sin(p.Angle)
	wantY := p.Origin.Y + snap.R*math.Cos(p.Angle)
	if math.Abs(snap.Bob.X-wantX) > 1e-9 || math.Abs(snap.Bob.Y-wantY) > 1e-9 {
		t.Errorf("clamped bob off the arm: got (%f, %f), want (%f, %f)",
			snap.Bob.X, snap.Bob.Y, wantX, wantY)
	}
}

func TestDefaultPermissiveness(t *testing.T) {
	s := newSession()
	snap := s.OnFrame()

	s.OnPointerMove(snap.Bob.X, snap.Bob.Y)
	s.OnPointerDown()
	s.OnPointerMove(400, 0) // collapse the arm onto the pivot
	s.OnFrame()
	s.OnPointerUp()
	s.OnFrame() // divides by r=0

	if s.Pendulum().Valid() {
		t.Error("default options must let r=0 blow up")
	}
}

func TestFormatReadouts(t *testing.T) {
	lines := FormatReadouts(pendulum.Readouts{
		Gravity:      0.5,
		Angle:        1.0,
		Acceleration: -0.002104,
		Velocity:     -0.0021,
		Mass:         1.0,
	})

	want := [5]string{
		"Gravity: 0.50",
		"Angle: 1.00",
		"Acceleration: -0.02",
		"Velocity: -0.00",
		"Mass: 1.00",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}

	for i, l := range lines {
		if !strings.Contains(l, ":") {
			t.Errorf("line %d missing label: %q", i, l)
		}
	}
}
