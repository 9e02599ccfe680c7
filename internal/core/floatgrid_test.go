package core

import "testing"

func TestFloatGridPadding(t *testing.T) {
	g := NewFloatGrid(4, 3)
	if got, want := len(g.Cells()), (4+1)*(3+1); got != want {
		t.Fatalf("backing length = %d, want %d", got, want)
	}

	// The +1/+stride+1 lookahead from the last visible cell stays in range.
	last := g.Index(3, 2)
	if last+g.Stride()+1 >= len(g.Cells()) {
		t.Fatal("lookahead from the last visible cell escapes the buffer")
	}

	g.Cells()[g.Index(2, 1)] = 5
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared: %v", i, v)
		}
	}
}

func TestFloatGridDegenerateDimensions(t *testing.T) {
	g := NewFloatGrid(0, -2)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("degenerate grid sized %dx%d, want 1x1", g.W, g.H)
	}
}
