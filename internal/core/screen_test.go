package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColored(6, 5, '@', ColorActor)
	if c := s.GetCell(6, 5); c.Rune != '@' || c.Color != ColorActor {
		t.Errorf("GetCell(6, 5) = %+v", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should be uncolored")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorWall)

	s.Clear()

	for y := range 10 {
		for x := range 10 {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "héllo", ColorText)

	if s.Row(1) != "  héllo             " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.GetCell(3, 1).Color != ColorText {
		t.Error("text should carry its color")
	}

	// Clipped at the right edge
	s.DrawText(17, 2, "abcdef", ColorText)
	if s.Row(2) != strings.Repeat(" ", 17)+"abc" {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorDefault)
	if s.Row(0) != "    ab    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorDim)

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, 'X')
	s.Set(3, 0, 'Y')

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 2x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'X' {
		t.Error("content inside the new bounds should survive a resize")
	}
	if s.Get(3, 0) != ' ' {
		t.Error("content outside the new bounds should be gone")
	}

	s.Resize(-1, -1)
	if s.Width() != 0 || s.Height() != 0 || s.String() != "" {
		t.Error("negative sizes should clamp to an empty screen")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if s.Row(5) != "   " {
		t.Errorf("Row(5) = %q, expected blanks", s.Row(5))
	}
}
