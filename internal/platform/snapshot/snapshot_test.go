package snapshot

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/platform/headless"
)

func testFrame() headless.Frame {
	return headless.Frame{
		Background: core.ColorBlack,
		Rects: []headless.FilledRect{
			{Rect: core.NewRect(10, 2, 4, 4), Color: core.ColorWhite},
			{Rect: core.NewRect(5, 24, 20, 4), Color: core.ColorRed},
		},
	}
}

// near reports whether the pixel at (x, y) is within 8/255 of want.
func near(t *testing.T, img image.Image, x, y int, want core.Color) bool {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	wr, wg, wb := want.RGB()
	diff := func(a uint32, w uint8) int {
		d := int(a>>8) - int(w)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(r, wr) <= 8 && diff(g, wg) <= 8 && diff(b, wb) <= 8
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testFrame(), 40, 30); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("bounds = %v, expected 40x30", b)
	}

	tests := []struct {
		name string
		x, y int
		want core.Color
	}{
		{"background corner", 0, 0, core.ColorBlack},
		{"ball center", 12, 4, core.ColorWhite},
		{"paddle center", 15, 26, core.ColorRed},
		{"between shapes", 20, 15, core.ColorBlack},
	}
	for _, tc := range tests {
		if !near(t, img, tc.x, tc.y, tc.want) {
			t.Errorf("%s: pixel (%d, %d) = %v, expected %s", tc.name, tc.x, tc.y, img.At(tc.x, tc.y), tc.want)
		}
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := Save(path, testFrame(), 40, 30); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 30 {
		t.Errorf("size = %dx%d, expected 40x30", cfg.Width, cfg.Height)
	}
}

func TestEncodeRejectsBadSize(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testFrame(), 0, 30); err == nil {
		t.Error("expected an error for a zero-width image")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}
