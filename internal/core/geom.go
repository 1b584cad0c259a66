// Package core provides fundamental types shared by the game and the platform
// backends. It has no external dependencies so game logic stays pure and
// testable.
package core

// Rect is an integer axis-aligned rectangle, the unit every backend draws.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ScaleRect maps a rectangle in a worldW x worldH coordinate space onto a
// cols x rows grid. Any rectangle with positive size covers at least one
// cell, so a small ball never vanishes on a coarse terminal grid.
func ScaleRect(r Rect, worldW, worldH, cols, rows int) Rect {
	if worldW <= 0 || worldH <= 0 || r.Empty() {
		return Rect{}
	}

	x0 := floorDiv(r.X*cols, worldW)
	y0 := floorDiv(r.Y*rows, worldH)
	x1 := ceilDiv(r.Right()*cols, worldW)
	y1 := ceilDiv(r.Bottom()*rows, worldH)

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
