package vortex

import (
	"math"
	"slices"
	"testing"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

var vp = core.Viewport{W: 800, H: 600, DPR: 1}

func TestFitClampsToBounds(t *testing.T) {
	v := New(1)
	if count, _ := v.Fit(0, vp); count != 6000 {
		t.Fatalf("minimum count = %d, want 6000", count)
	}
	if count, _ := v.Fit(10, vp); count != 120000 {
		t.Fatalf("maximum count = %d, want 120000", count)
	}
}

func TestFitIsIdempotent(t *testing.T) {
	v := New(1)
	v.Fit(0.05, vp)
	before := append([]particle(nil), v.pts...)
	if _, rebuilt := v.Fit(0.05, vp); rebuilt {
		t.Fatal("unchanged target must not rebuild")
	}
	if !slices.Equal(before, v.pts) {
		t.Fatal("no-op rebuild reshuffled the layout")
	}
}

func TestLayoutBiasesTowardRim(t *testing.T) {
	v := New(1)
	v.Fit(0.05, vp)
	outer := 0
	for _, p := range v.pts {
		if p.r < 0 || p.r > 1 {
			t.Fatalf("base radius %v outside [0, 1]", p.r)
		}
		if p.r > 0.5 {
			outer++
		}
	}
	// r = 1-(1-u)^1.6 puts well over half the points outside half radius:
	// P(r > 0.5) = 1 - 0.5^(1/1.6) ~ 0.35 for u, i.e. r > 0.5 for u > 0.35.
	frac := float64(outer) / float64(len(v.pts))
	if frac < 0.6 {
		t.Fatalf("rim fraction = %v, want > 0.6", frac)
	}
}

func TestCompressionKeepsPointsInsideDisc(t *testing.T) {
	v := New(1)
	v.Fit(0.05, vp)
	for _, tm := range []float64{0, 5, 500} {
		fr := core.Frame{T: tm, Zoom: 1, Vp: vp}
		limit := core.DiscScale(vp, 1) * 1.06
		for i := 0; i < v.Count(); i += 101 {
			p, ok := v.At(i, fr)
			if !ok {
				t.Fatalf("particle %d culled by transform", i)
			}
			d := math.Hypot(p.X-vp.W/2, p.Y-vp.H/2)
			if d > limit {
				t.Fatalf("t=%v particle %d at distance %v, limit %v", tm, i, d, limit)
			}
		}
	}
}

func TestCompressionPullsInward(t *testing.T) {
	// The compressed radius 0.35 + 0.65*(1-e^{-4r}) maps [0, 1] onto
	// roughly [0.35, 0.99]: nothing reaches the raw rim, nothing falls
	// into the core.
	for _, r := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := 0.35 + 0.65*(1-math.Exp(-4*r))
		if got < 0.35 || got > 0.99 {
			t.Fatalf("compressed radius for r=%v is %v", r, got)
		}
	}
}
