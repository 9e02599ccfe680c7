package orbit

import (
	"slices"
	"testing"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

var vp = core.Viewport{W: 800, H: 600, DPR: 1}

func TestDynamicFitKeepsCurveFramed(t *testing.T) {
	o := New(1)
	o.Fit(0.05, vp)

	const slack = 1e-6
	for _, tm := range []float64{0, 1.1, 47.3, 600, 12345} {
		fr := core.Frame{T: tm, Zoom: 1, Vp: vp}
		o.Prepare(fr)
		for i := 0; i < o.Count(); i++ {
			p, ok := o.At(i, fr)
			if !ok {
				t.Fatalf("t=%v particle %d culled", tm, i)
			}
			if p.X < -slack || p.X > vp.W+slack || p.Y < -slack || p.Y > vp.H+slack {
				t.Fatalf("t=%v particle %d at (%v, %v) escapes the viewport", tm, i, p.X, p.Y)
			}
		}
	}
}

func TestFitUsesMargin(t *testing.T) {
	o := New(1)
	o.Fit(0.05, vp)
	fr := core.Frame{T: 3, Zoom: 1, Vp: vp}
	o.Prepare(fr)

	minX, maxX := vp.W, 0.0
	minY, maxY := vp.H, 0.0
	for i := 0; i < o.Count(); i++ {
		p, _ := o.At(i, fr)
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	// The curve is centered and the larger span fills exactly the margin
	// fraction of its viewport dimension.
	spanX := (maxX - minX) / vp.W
	spanY := (maxY - minY) / vp.H
	larger := max(spanX, spanY)
	if larger < 0.92-1e-6 || larger > 0.92+1e-6 {
		t.Fatalf("fitted span fraction = %v, want 0.92", larger)
	}
}

func TestZoomDoesNotBreakFraming(t *testing.T) {
	o := New(1)
	o.Fit(0.05, vp)
	for _, zoom := range []float64{0.5, 1, 4} {
		fr := core.Frame{T: 9.5, Zoom: zoom, Vp: vp}
		o.Prepare(fr)
		for i := 0; i < o.Count(); i += 53 {
			p, _ := o.At(i, fr)
			if p.X < 0 || p.X > vp.W || p.Y < 0 || p.Y > vp.H {
				t.Fatalf("zoom=%v particle %d at (%v, %v) escapes", zoom, i, p.X, p.Y)
			}
		}
	}
}

func TestFitIsIdempotentAndDeterministic(t *testing.T) {
	o := New(7)
	o.Fit(0.05, vp)
	before := append([]particle(nil), o.pts...)

	if _, rebuilt := o.Fit(0.05, vp); rebuilt {
		t.Fatal("unchanged target must not rebuild")
	}
	if !slices.Equal(before, o.pts) {
		t.Fatal("no-op rebuild changed the index layout")
	}

	o2 := New(7)
	o2.Fit(0.05, vp)
	if !slices.Equal(before, o2.pts) {
		t.Fatal("same seed produced a different layout")
	}
}

func TestCountClampsToBounds(t *testing.T) {
	o := New(1)
	if count, _ := o.Fit(0, vp); count != 2000 {
		t.Fatalf("minimum count = %d, want 2000", count)
	}
	if count, _ := o.Fit(10, vp); count != 60000 {
		t.Fatalf("maximum count = %d, want 60000", count)
	}
}
