package trace

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/session"
)

func sampleFrames(n int) []FrameRecord {
	rec := NewRecorder(60)
	s := session.New(pendulum.New(400, 0, 200))
	for i := 0; i < n; i++ {
		rec.Observe(s.OnFrame())
	}
	return rec.Frames()
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := NewStore(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	frames := sampleFrames(120)
	runID, err := st.Save(RunMetadata{FPS: 60, Gravity: 0.5, Mass: 1, Radius: 200}, frames)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "pendulum_") {
		t.Errorf("unexpected run id: %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Frames != 120 || meta.FPS != 60 {
		t.Errorf("unexpected metadata: %+v", meta)
	}

	loaded, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != len(frames) {
		t.Fatalf("expected %d frames, got %d", len(frames), len(loaded))
	}
	for i := range frames {
		if math.Abs(loaded[i].Angle-frames[i].Angle) > 1e-5 {
			t.Errorf("frame %d angle: expected %f, got %f", i, frames[i].Angle, loaded[i].Angle)
		}
	}
	if loaded[0].Frame != 0 || loaded[119].Frame != 119 {
		t.Error("frame indices did not survive roundtrip")
	}
}

func TestListEmptyDir(t *testing.T) {
	st := NewStore(t.TempDir() + "/nonexistent")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := NewStore(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Save(RunMetadata{FPS: 60}, sampleFrames(10)); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Frames != 10 {
		t.Errorf("expected 10 frames, got %d", runs[0].Frames)
	}
}

func TestRapidSavesGetDistinctIDs(t *testing.T) {
	st := NewStore(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		id, err := st.Save(RunMetadata{FPS: 60}, sampleFrames(i+1))
		if err != nil {
			t.Fatal(err)
		}
		if ids[id] {
			t.Fatalf("duplicate run id %s", id)
		}
		ids[id] = true
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 5 {
		t.Fatalf("expected 5 runs, got %d", len(runs))
	}
	for _, run := range runs {
		frames, err := st.LoadFrames(run.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(frames) != run.Frames {
			t.Errorf("run %s: metadata says %d frames, csv has %d", run.ID, run.Frames, len(frames))
		}
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := NewStore(t.TempDir())
	if _, err := st.Load("pendulum_0"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestRecorderTimestamps(t *testing.T) {
	frames := sampleFrames(61)

	if frames[0].Time != 0 {
		t.Errorf("first frame at t=%f", frames[0].Time)
	}
	if math.Abs(frames[60].Time-1.0) > 1e-9 {
		t.Errorf("frame 60 should be at 1s, got %f", frames[60].Time)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	frames := sampleFrames(5)

	if err := ExportJSON(&buf, RunMetadata{ID: "pendulum_1", FPS: 60}, frames); err != nil {
		t.Fatal(err)
	}

	var out exportRun
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Meta.ID != "pendulum_1" || len(out.Frames) != 5 {
		t.Errorf("unexpected export: %+v", out.Meta)
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, sampleFrames(3)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,time,angle") {
		t.Errorf("unexpected header: %s", lines[0])
	}
}
