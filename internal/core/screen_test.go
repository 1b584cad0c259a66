package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorBlack {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank black", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorWhite)
	s.Set(100, 0, 'A', ColorWhite)

	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("out of bounds GetCell should be blank, got %q", c.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(NewRect(0, 0, 4, 3), ColorWhite)
	s.Clear(ColorBlue)

	if s.Background() != ColorBlue {
		t.Errorf("Background() = %v, expected blue", s.Background())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorBlue {
				t.Errorf("after Clear, cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(10, 5)
	s.FillRect(NewRect(8, 3, 5, 5), ColorWhite)

	filled := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune == FillRune {
				filled++
			}
		}
	}
	if filled != 4 {
		t.Errorf("expected 4 filled cells after clipping, got %d", filled)
	}
	if s.GetCell(9, 4).Color != ColorWhite {
		t.Error("bottom-right cell should be white")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.FillRect(NewRect(1, 0, 1, 2), ColorWhite)

	expected := " █ \n █ "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Clear(ColorGray)
	s.Resize(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("after resize, size = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if c := s.GetCell(3, 1); c.Color != ColorGray {
		t.Errorf("resize should keep the background, got %v", c.Color)
	}
}

func TestColorText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("Cyan")); err != nil {
		t.Fatalf("UnmarshalText() failed: %v", err)
	}
	if c != ColorCyan {
		t.Errorf("expected cyan, got %v", c)
	}
	if c.Hex() != "#28bec8" {
		t.Errorf("Hex() = %s", c.Hex())
	}
	if err := c.UnmarshalText([]byte("mauve")); err == nil {
		t.Error("expected error for unknown color")
	}
}
