// Package telemetry accumulates per-frame engine statistics for headless
// benchmark runs and exports them as CSV.
package telemetry

import (
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

// FrameSample is one recorded frame of mirrored engine statistics.
type FrameSample struct {
	Frame  int     `csv:"frame"`
	FPS    float64 `csv:"fps"`
	Points int     `csv:"points"`
	Speed  float64 `csv:"speed"`
	Zoom   float64 `csv:"zoom"`
}

// Recorder merges the engine's partial stats reports into per-frame rows.
// The engine emits FPS exactly once per frame, which the recorder uses as
// the frame boundary.
type Recorder struct {
	samples []FrameSample
	current FrameSample
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe is a core.StatsFunc. Partial reports update the running values;
// an FPS report closes out the frame.
func (r *Recorder) Observe(s core.Stats) {
	if s.Points > 0 {
		r.current.Points = s.Points
	}
	if s.Speed > 0 {
		r.current.Speed = s.Speed
	}
	if s.Zoom > 0 {
		r.current.Zoom = s.Zoom
	}
	if s.FPS > 0 {
		r.current.FPS = s.FPS
		r.current.Frame = len(r.samples)
		r.samples = append(r.samples, r.current)
	}
}

// Samples exposes the recorded frames.
func (r *Recorder) Samples() []FrameSample { return r.samples }

// WriteCSV writes all recorded frames in CSV form.
func (r *Recorder) WriteCSV(w io.Writer) error {
	return gocsv.Marshal(&r.samples, w)
}

// Summary aggregates the recorded frame rates.
type Summary struct {
	Frames  int
	MeanFPS float64
	P10FPS  float64
	P50FPS  float64
	P90FPS  float64
}

// Summarize computes the frame-rate summary over all recorded frames.
func (r *Recorder) Summarize() Summary {
	n := len(r.samples)
	if n == 0 {
		return Summary{}
	}
	fps := make([]float64, n)
	for i, s := range r.samples {
		fps[i] = s.FPS
	}
	sort.Float64s(fps)
	return Summary{
		Frames:  n,
		MeanFPS: stat.Mean(fps, nil),
		P10FPS:  stat.Quantile(0.10, stat.Empirical, fps, nil),
		P50FPS:  stat.Quantile(0.50, stat.Empirical, fps, nil),
		P90FPS:  stat.Quantile(0.90, stat.Empirical, fps, nil),
	}
}
