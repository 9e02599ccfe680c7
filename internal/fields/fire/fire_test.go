package fire

import (
	"testing"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

var vp = core.Viewport{W: 800, H: 600, DPR: 1}

func gridSum(f *Fire) float64 {
	var sum float64
	for _, v := range f.grid.Cells() {
		sum += float64(v)
	}
	return sum
}

func TestDecayWithoutSeedingIsMonotone(t *testing.T) {
	f := New(1)
	f.Fit(0.8, vp)

	// Paint an arbitrary hot region, then run diffusion and decay with no
	// seeding at all.
	for x := 0; x < f.grid.W; x++ {
		f.grid.Cells()[f.grid.Index(x, f.grid.H-1)] = 65
	}
	prev := gridSum(f)
	for step := 0; step < 200; step++ {
		f.diffuse()
		f.decayAll()
		cur := gridSum(f)
		if cur > prev {
			t.Fatalf("step %d: total intensity rose %v -> %v", step, prev, cur)
		}
		for i, v := range f.grid.Cells() {
			if v < 0 {
				t.Fatalf("step %d: cell %d went negative: %v", step, i, v)
			}
		}
		prev = cur
	}
	if prev > 1e-6 {
		t.Fatalf("intensity did not decay toward zero: %v", prev)
	}
}

func TestStepKeepsIntensitiesBounded(t *testing.T) {
	f := New(1)
	f.Fit(0.8, vp)
	fr := core.Frame{T: 0, Zoom: 1, Vp: vp}
	for i := 0; i < 500; i++ {
		f.Step(fr, 1.0/60, 1, 0.8)
	}
	for i, v := range f.grid.Cells() {
		if v < 0 || v > 70 {
			t.Fatalf("cell %d out of range: %v", i, v)
		}
	}
}

func TestDensityInversion(t *testing.T) {
	// For fire, a higher density means smaller cells and therefore more of
	// them, inverted from the point-count fields.
	low := New(1)
	high := New(1)
	lowCount, _ := low.Fit(0.2, vp)
	highCount, _ := high.Fit(1.2, vp)

	if low.CellSize() <= high.CellSize() {
		t.Fatalf("cell sizes: low-density %v should exceed high-density %v", low.CellSize(), high.CellSize())
	}
	if lowCount >= highCount {
		t.Fatalf("cell counts: low-density %d should be below high-density %d", lowCount, highCount)
	}

	// The 14px floor kicks in at density >= 1.4.
	floor := New(1)
	floor.Fit(3, vp)
	if floor.CellSize() != 14 {
		t.Fatalf("cell size floor = %v, want 14", floor.CellSize())
	}
}

func TestFitIsIdempotent(t *testing.T) {
	f := New(1)
	f.Fit(0.8, vp)
	f.grid.Cells()[f.grid.Index(3, 3)] = 42

	count, rebuilt := f.Fit(0.8, vp)
	if rebuilt {
		t.Fatal("unchanged dimensions must not rebuild")
	}
	if count != f.Count() {
		t.Fatalf("count = %d, want %d", count, f.Count())
	}
	if f.grid.Cells()[f.grid.Index(3, 3)] != 42 {
		t.Fatal("no-op rebuild cleared accumulated intensity")
	}
}

func TestResetClearsIntensityKeepsDimensions(t *testing.T) {
	f := New(1)
	f.Fit(0.8, vp)
	cols, rows := f.grid.W, f.grid.H
	f.grid.Cells()[f.grid.Index(1, 1)] = 30

	f.Reset()
	if f.grid.W != cols || f.grid.H != rows {
		t.Fatal("reset changed grid dimensions")
	}
	if gridSum(f) != 0 {
		t.Fatal("reset left intensity behind")
	}
}

func TestAtVisibilityThreshold(t *testing.T) {
	f := New(1)
	f.Fit(0.8, vp)
	fr := core.Frame{T: 0, Zoom: 1, Vp: vp}

	f.grid.Cells()[f.grid.Index(2, 2)] = 1.0
	if _, ok := f.At(2*f.grid.W+2, fr); ok {
		t.Fatal("cell below the visibility threshold was drawn")
	}

	f.grid.Cells()[f.grid.Index(2, 2)] = 40
	p, ok := f.At(2*f.grid.W+2, fr)
	if !ok {
		t.Fatal("hot cell was culled")
	}
	if p.Color.A == 0 || p.Color.R == 0 {
		t.Fatalf("hot cell shaded as %+v", p.Color)
	}
	if p.Size != f.CellSize() {
		t.Fatalf("cell draw size = %v, want %v", p.Size, f.CellSize())
	}
}
