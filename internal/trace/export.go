package trace

import (
	"encoding/csv"
	"encoding/json"
	"io"
)

type exportRun struct {
	Meta   RunMetadata   `json:"meta"`
	Frames []FrameRecord `json:"frames"`
}

// ExportJSON writes a run with its full frame history as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, frames []FrameRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportRun{Meta: meta, Frames: frames})
}

// ExportCSV re-emits a run's frames as CSV, header included.
func ExportCSV(w io.Writer, frames []FrameRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, f := range frames {
		if err := cw.Write(frameRow(f)); err != nil {
			return err
		}
	}
	return nil
}
