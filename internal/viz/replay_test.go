package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/pendlab/internal/config"
	"github.com/san-kum/pendlab/internal/trace"
)

func replayFixture(n int) ReplayModel {
	frames := make([]trace.FrameRecord, n)
	for i := range frames {
		frames[i] = trace.FrameRecord{
			Frame: i,
			Time:  float64(i) / 60,
			Angle: 1.0,
			BobX:  400,
			BobY:  200,
			M:     1,
			G:     0.5,
		}
	}
	meta := trace.RunMetadata{ID: "pendulum_test", FPS: 60, Frames: n}
	return NewReplayModel(config.DefaultConfig(), meta, frames)
}

func TestReplayAdvancesAndHoldsLastFrame(t *testing.T) {
	m := replayFixture(3)

	step := func(m ReplayModel) ReplayModel {
		next, _ := m.Update(TickMsg(time.Now()))
		return next.(ReplayModel)
	}

	m = step(m)
	if m.idx != 1 {
		t.Fatalf("expected frame 1 after one tick, got %d", m.idx)
	}
	m = step(m)
	if m.idx != 2 {
		t.Fatalf("expected frame 2, got %d", m.idx)
	}

	// at the end the playback holds instead of wrapping
	m = step(m)
	if m.idx != 2 {
		t.Errorf("expected to hold last frame, got %d", m.idx)
	}
	if m.playing {
		t.Error("playback should pause at the end")
	}
}

func TestReplayStepKeysClampToRange(t *testing.T) {
	m := replayFixture(5)

	left := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}
	right := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}

	next, _ := m.Update(left)
	m = next.(ReplayModel)
	if m.idx != 0 {
		t.Errorf("stepping back from frame 0 must stay at 0, got %d", m.idx)
	}
	if m.playing {
		t.Error("stepping must pause playback")
	}

	for i := 0; i < 10; i++ {
		next, _ = m.Update(right)
		m = next.(ReplayModel)
	}
	if m.idx != 4 {
		t.Errorf("stepping forward must clamp to the last frame, got %d", m.idx)
	}
}

func TestReplayViewShowsProgress(t *testing.T) {
	m := replayFixture(4)
	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(ReplayModel)

	view := m.View()
	if !strings.Contains(view, "frame 2/4") {
		t.Errorf("expected frame counter in view:\n%s", view)
	}
	if !strings.Contains(view, "pendulum_test") {
		t.Error("expected run id in view")
	}
	if !strings.Contains(view, "Gravity:") {
		t.Error("expected readouts in view")
	}
}
