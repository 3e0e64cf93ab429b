package trace

import "github.com/san-kum/pendlab/internal/pendulum"

// Recorder collects frame records from a running session. The frame-driven
// loop calls Observe once per tick with the snapshot it just rendered.
type Recorder struct {
	fps    int
	frames []FrameRecord
}

func NewRecorder(fps int) *Recorder {
	return &Recorder{fps: fps, frames: make([]FrameRecord, 0, 1024)}
}

func (r *Recorder) Observe(snap pendulum.Snapshot) {
	n := len(r.frames)
	r.frames = append(r.frames, FrameRecord{
		Frame:        n,
		Time:         float64(n) / float64(r.fps),
		Angle:        snap.Readouts.Angle,
		Velocity:     snap.Readouts.Velocity,
		Acceleration: snap.Readouts.Acceleration,
		R:            snap.R,
		M:            snap.Readouts.Mass,
		G:            snap.Readouts.Gravity,
		BobX:         snap.Bob.X,
		BobY:         snap.Bob.Y,
		Grabbed:      snap.Grabbed,
	})
}

func (r *Recorder) Frames() []FrameRecord {
	return r.frames
}

func (r *Recorder) Len() int {
	return len(r.frames)
}

func (r *Recorder) Reset() {
	r.frames = r.frames[:0]
}
