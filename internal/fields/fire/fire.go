// Package fire implements the cellular fire field: a coarse intensity grid
// seeded along its bottom row, diffused upward, and decayed every step.
package fire

import (
	"image/color"
	"math"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

const (
	minCols, maxCols = 8, 512
	minRows, maxRows = 6, 288

	speedScale = 60

	pulseAmp  = 0.06
	pulseFreq = 0.08

	// Intensity model. Seeds land at 60 + rand*5, the box filter averages
	// with 0.25, and decay keeps every cell in [0, ~70].
	seedBase   = 60.0
	seedJitter = 5.0
	spread     = 0.25
	decay      = 0.985

	// Cells below this intensity are not drawn.
	visibleMin = 1.5

	// Gamma reference: t = clamp(v/45, 0, 1), g = t*t.
	gammaRef = 45.0
)

// Fire owns the padded intensity grid. Unlike the point fields, a higher
// density yields a finer grid through cellSize = max(14, 28 - density*10);
// the inversion is intentional per-field semantics.
type Fire struct {
	seed int64
	rng  *core.RNG

	cell float64
	grid *core.FloatGrid
}

// New returns a fire field seeded for deterministic seeding streams.
func New(seed int64) *Fire {
	return &Fire{seed: seed, rng: core.NewRNG(seed)}
}

// Name identifies the field.
func (f *Fire) Name() string { return "fire" }

// SpeedScale reports the fixed logical-time rate constant.
func (f *Fire) SpeedScale() float64 { return speedScale }

// ZoomPulse reports the breathing modulation constants.
func (f *Fire) ZoomPulse() (float64, float64) { return pulseAmp, pulseFreq }

// Background clears fully; fire carries its own persistence in the grid.
func (f *Fire) Background() color.RGBA { return color.RGBA{A: 255} }

// Count reports the number of visible cells.
func (f *Fire) Count() int {
	if f.grid == nil {
		return 0
	}
	return f.grid.W * f.grid.H
}

// CellSize exposes the current cell edge length in CSS pixels.
func (f *Fire) CellSize() float64 { return f.cell }

// Reset clears all accumulated intensity. Grid dimensions are kept.
func (f *Fire) Reset() {
	if f.grid != nil {
		f.grid.Clear()
	}
	f.rng = core.NewRNG(f.seed)
}

// Fit sizes the grid from the density-derived cell size and the viewport.
// Unchanged dimensions keep the existing intensities untouched.
func (f *Fire) Fit(density float64, vp core.Viewport) (int, bool) {
	density = core.SanitizeDensity(density)
	cell := math.Max(14, 28-density*10)
	cols := clampInt(int(vp.W/cell)+1, minCols, maxCols)
	rows := clampInt(int(vp.H/cell)+1, minRows, maxRows)
	if f.grid != nil && cols == f.grid.W && rows == f.grid.H && cell == f.cell {
		return cols * rows, false
	}
	f.cell = cell
	f.grid = core.NewFloatGrid(cols, rows)
	f.rng = core.NewRNG(f.seed)
	return cols * rows, true
}

// Step runs one simulation tick: seed random bottom-row columns, diffuse
// each cell from itself and its right / below / below-right neighbors, then
// decay everything.
func (f *Fire) Step(fr core.Frame, dt, speed, density float64) {
	if f.grid == nil {
		return
	}
	f.seedRow(density)
	f.diffuse()
	f.decayAll()
}

// seedRow ignites a density-derived number of random bottom-row columns.
func (f *Fire) seedRow(density float64) {
	g := f.grid.Cells()
	bottom := (f.grid.H - 1) * f.grid.Stride()
	for k := seedColumns(f.grid.W, density); k > 0; k-- {
		g[bottom+f.rng.IntN(f.grid.W)] = float32(seedBase + f.rng.Float64()*seedJitter)
	}
}

// diffuse box-filters every cell in place, top to bottom: each row reads
// the still-previous row below it, so intensity drifts upward one row per
// step. The padding ring keeps the lookahead reads unchecked.
func (f *Fire) diffuse() {
	g := f.grid.Cells()
	cols, rows := f.grid.W, f.grid.H
	stride := f.grid.Stride()
	for y := 0; y < rows; y++ {
		base := y * stride
		for x := 0; x < cols; x++ {
			i := base + x
			g[i] = (g[i] + g[i+1] + g[i+stride] + g[i+stride+1]) * spread
		}
	}
}

// decayAll pulls every intensity toward zero to prevent saturation.
func (f *Fire) decayAll() {
	g := f.grid.Cells()
	for i := range g {
		g[i] *= decay
	}
}

// At maps cell i to a screen rect with the fixed non-linear color ramp.
// Cells below the visibility threshold are skipped.
func (f *Fire) At(i int, fr core.Frame) (core.Point, bool) {
	cols, rows := f.grid.W, f.grid.H
	y := i / cols
	x := i % cols
	v := float64(f.grid.Cells()[y*f.grid.Stride()+x])
	if v < visibleMin {
		return core.Point{}, false
	}

	t := clamp01(v / gammaRef)
	g := t * t

	cs := f.cell * fr.Zoom
	px := fr.Vp.W/2 + (float64(x)-float64(cols)/2)*cs
	py := fr.Vp.H/2 + (float64(y)-float64(rows)/2)*cs

	// Black -> red -> orange -> white ramp; alpha follows raw intensity.
	// Channels are premultiplied by the alpha ramp.
	c := color.RGBA{
		R: ramp(clamp01(g*3.2) * t),
		G: ramp(clamp01(g*2.2-0.35) * t),
		B: ramp(clamp01(g*3.5-2.3) * t),
		A: uint8(255 * t),
	}
	return core.Point{X: px, Y: py, Size: cs, Weight: t, Color: c}, true
}

// seedColumns derives the per-step seed count from the density parameter.
func seedColumns(cols int, density float64) int {
	d := math.Min(core.SanitizeDensity(density), 2)
	n := int(float64(cols) * (0.10 + 0.08*d))
	if n < 2 {
		n = 2
	}
	return n
}

func ramp(v float64) uint8 { return uint8(255 * clamp01(v)) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	core.Register("fire", func(cfg map[string]string) core.Field {
		return New(core.SeedFrom(cfg, 4))
	})
}
