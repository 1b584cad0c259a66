// Package grid rasterizes world-pixel draw calls onto a character grid.
// Terminal backends share it and differ only in how a finished grid is
// put on screen.
package grid

import (
	"errors"

	"github.com/vovakirdan/paddleball/internal/core"
)

// PresentFunc shows a finished frame.
type PresentFunc func(s *core.Screen) error

// Renderer implements platform.Renderer on top of a core.Screen.
type Renderer struct {
	screen  *core.Screen
	worldW  int
	worldH  int
	present PresentFunc
	destroy func() error

	destroyed bool
}

// NewRenderer creates a renderer for a worldW x worldH world shown on a
// cols x rows grid. destroy may be nil.
func NewRenderer(worldW, worldH, cols, rows int, present PresentFunc, destroy func() error) *Renderer {
	return &Renderer{
		screen:  core.NewScreen(cols, rows),
		worldW:  worldW,
		worldH:  worldH,
		present: present,
		destroy: destroy,
	}
}

// Screen returns the grid being drawn into.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Resize changes the grid size; the next frame is drawn at the new size.
func (r *Renderer) Resize(cols, rows int) {
	r.screen.Resize(cols, rows)
}

// Clear blanks the grid with c.
func (r *Renderer) Clear(c core.Color) {
	r.screen.Clear(c)
}

// FillRect scales rect from world pixels to cells and fills it.
func (r *Renderer) FillRect(rect core.Rect, c core.Color) {
	cell := core.ScaleRect(rect, r.worldW, r.worldH, r.screen.Width(), r.screen.Height())
	r.screen.FillRect(cell, c)
}

// Present hands the grid to the backend.
func (r *Renderer) Present() error {
	if r.destroyed {
		return errors.New("grid: present after destroy")
	}
	return r.present(r.screen)
}

// Destroy runs the backend teardown once.
func (r *Renderer) Destroy() error {
	if r.destroyed {
		return nil
	}
	r.destroyed = true
	if r.destroy == nil {
		return nil
	}
	return r.destroy()
}
