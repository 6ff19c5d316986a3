package bench

import (
	"encoding/json"
	"io"
)

// MatrixInfo records the dimensions of the measured matrix.
type MatrixInfo struct {
	Rows     int `json:"rows"`
	Cols     int `json:"cols"`
	Nonzeros int `json:"nonzeros"`
}

// Params records the runner configuration a report was produced under.
type Params struct {
	Algorithm string `json:"algorithm"`
	Workers   int    `json:"workers"`
	Trials    int    `json:"trials"`
}

// Stats summarizes the per-trial wall times.
type Stats struct {
	MeanSeconds   float64 `json:"mean_time_s"`
	StdDevSeconds float64 `json:"stddev_time_s"`
}

// Result carries the engine answer and the measurements around it.
type Result struct {
	Components   int       `json:"components"`
	TrialSeconds []float64 `json:"trial_times_s"`
	Stats        Stats     `json:"stats"`
	AllocBytes   uint64    `json:"alloc_bytes"`
}

// Report is the full JSON document emitted for one measurement run.
type Report struct {
	Matrix MatrixInfo `json:"matrix"`
	Params Params     `json:"parameters"`
	Result Result     `json:"result"`
}

// WriteJSON emits the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
