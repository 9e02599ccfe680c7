package core

// FloatGrid stores a 2D grid of float32 intensities in row-major order with
// one extra padding column and row. The padding stays zero and lets step
// kernels read +1 / +stride+1 neighbors without bounds checks.
type FloatGrid struct {
	W, H int
	data []float32
}

// NewFloatGrid allocates a padded grid with w x h visible cells.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float32, (w+1)*(h+1))}
}

// Cells exposes the backing slice, padding included.
func (g *FloatGrid) Cells() []float32 { return g.data }

// Stride is the row stride of the backing slice.
func (g *FloatGrid) Stride() int { return g.W + 1 }

// Index returns the linear slice index for visible coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*(g.W+1) + x }

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
