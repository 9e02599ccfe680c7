package telemetry

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

func TestObserveMergesPartialReports(t *testing.T) {
	r := NewRecorder()

	// Rebuild and parameter echoes arrive first, then the per-frame FPS
	// report closes the frame.
	r.Observe(core.Stats{Points: 24000})
	r.Observe(core.Stats{Speed: 1.5})
	r.Observe(core.Stats{Zoom: 2})
	if len(r.Samples()) != 0 {
		t.Fatal("partial reports must not produce frames")
	}

	r.Observe(core.Stats{FPS: 60})
	r.Observe(core.Stats{FPS: 59})

	samples := r.Samples()
	if len(samples) != 2 {
		t.Fatalf("got %d frames, want 2", len(samples))
	}
	first := samples[0]
	if first.Frame != 0 || first.FPS != 60 || first.Points != 24000 || first.Speed != 1.5 || first.Zoom != 2 {
		t.Fatalf("first frame = %+v", first)
	}
	// Mirrored values persist across frames until re-reported.
	if samples[1].Points != 24000 || samples[1].FPS != 59 {
		t.Fatalf("second frame = %+v", samples[1])
	}
}

func TestSummarize(t *testing.T) {
	r := NewRecorder()
	for i := 1; i <= 10; i++ {
		r.Observe(core.Stats{FPS: float64(i)})
	}
	sum := r.Summarize()
	if sum.Frames != 10 {
		t.Fatalf("frames = %d, want 10", sum.Frames)
	}
	if math.Abs(sum.MeanFPS-5.5) > 1e-12 {
		t.Fatalf("mean = %v, want 5.5", sum.MeanFPS)
	}
	if sum.P10FPS < 1 || sum.P10FPS > 2 {
		t.Fatalf("p10 = %v, want in [1, 2]", sum.P10FPS)
	}
	if sum.P50FPS < 5 || sum.P50FPS > 6 {
		t.Fatalf("p50 = %v, want in [5, 6]", sum.P50FPS)
	}
	if sum.P90FPS < 9 || sum.P90FPS > 10 {
		t.Fatalf("p90 = %v, want in [9, 10]", sum.P90FPS)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if sum := NewRecorder().Summarize(); sum != (Summary{}) {
		t.Fatalf("empty summary = %+v", sum)
	}
}

func TestWriteCSV(t *testing.T) {
	r := NewRecorder()
	r.Observe(core.Stats{Points: 6000})
	r.Observe(core.Stats{FPS: 60})

	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "frame,fps,points,speed,zoom") {
		t.Fatalf("unexpected header: %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "6000") {
		t.Fatalf("row missing point count: %q", out)
	}
}
