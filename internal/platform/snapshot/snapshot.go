// Package snapshot rasterizes a recorded frame into a PNG image at world
// resolution, one image pixel per world pixel.
package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/platform/headless"
)

// draw paints f onto a new width x height context. The caller closes it.
func draw(f headless.Frame, width, height int) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("snapshot: invalid size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(ggColor(f.Background))

	for _, r := range f.Rects {
		if r.Rect.Empty() {
			continue
		}
		cr, cg, cb := unit(r.Color)
		dc.SetRGB(cr, cg, cb)
		dc.DrawRectangle(float64(r.Rect.X), float64(r.Rect.Y), float64(r.Rect.W), float64(r.Rect.H))
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("snapshot: fill: %w", err)
		}
	}
	return dc, nil
}

// Encode writes f as a PNG to w.
func Encode(w io.Writer, f headless.Frame, width, height int) error {
	dc, err := draw(f, width, height)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("snapshot: flush: %w", err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// Save writes f as a PNG file at path.
func Save(path string, f headless.Frame, width, height int) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()
	return Encode(file, f, width, height)
}

func unit(c core.Color) (r, g, b float64) {
	r8, g8, b8 := c.RGB()
	return float64(r8) / 255, float64(g8) / 255, float64(b8) / 255
}

func ggColor(c core.Color) gg.RGBA {
	return gg.RGB(unit(c))
}
