// Package trace records and persists simulation runs: one directory per run
// holding metadata.json and a frames.csv with the full per-frame state.
package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Frames    int       `json:"frames"`
	FPS       int       `json:"fps"`
	Preset    string    `json:"preset,omitempty"`
	Scenario  string    `json:"scenario,omitempty"`

	// Final parameter values, after any mid-run adjustments.
	Gravity float64 `json:"gravity"`
	Mass    float64 `json:"mass"`
	Radius  float64 `json:"radius"`
}

// FrameRecord is one rendered frame's worth of state.
type FrameRecord struct {
	Frame        int
	Time         float64
	Angle        float64
	Velocity     float64
	Acceleration float64
	R            float64
	M            float64
	G            float64
	BobX         float64
	BobY         float64
	Grabbed      bool
}

var csvHeader = []string{
	"frame", "time", "angle", "velocity", "acceleration",
	"r", "m", "g", "bob_x", "bob_y", "grabbed",
}

func (s *Store) Save(meta RunMetadata, frames []FrameRecord) (string, error) {
	runID, runDir, err := s.newRunDir()
	if err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Frames = len(frames)

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, f := range frames {
		if err := w.Write(frameRow(f)); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// newRunDir allocates a fresh run directory. os.Mkdir fails on an existing
// directory, so a second save in the same millisecond gets a suffixed id
// instead of clobbering the first.
func (s *Store) newRunDir() (string, string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", "", err
	}

	base := fmt.Sprintf("pendulum_%d", time.Now().UnixMilli())
	runID := base
	for n := 2; ; n++ {
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s_%d", base, n)
	}
}

func frameRow(f FrameRecord) []string {
	grabbed := "0"
	if f.Grabbed {
		grabbed = "1"
	}
	return []string{
		strconv.Itoa(f.Frame),
		fmtFloat(f.Time),
		fmtFloat(f.Angle),
		fmtFloat(f.Velocity),
		fmtFloat(f.Acceleration),
		fmtFloat(f.R),
		fmtFloat(f.M),
		fmtFloat(f.G),
		fmtFloat(f.BobX),
		fmtFloat(f.BobY),
		grabbed,
	}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]FrameRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []FrameRecord{}, nil
	}

	frames := make([]FrameRecord, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < len(csvHeader) {
			continue
		}
		f, err := parseRow(rec)
		if err != nil {
			continue
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func parseRow(rec []string) (FrameRecord, error) {
	var f FrameRecord
	frame, err := strconv.Atoi(rec[0])
	if err != nil {
		return f, err
	}
	vals := make([]float64, 9)
	for i := 0; i < 9; i++ {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return f, err
		}
		vals[i] = v
	}
	f = FrameRecord{
		Frame: frame,
		Time:  vals[0], Angle: vals[1], Velocity: vals[2], Acceleration: vals[3],
		R: vals[4], M: vals[5], G: vals[6], BobX: vals[7], BobY: vals[8],
		Grabbed: rec[10] == "1",
	}
	return f, nil
}
