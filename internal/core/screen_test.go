package core

import (
	"strings"
	"testing"
)

// rows renders the screen as one string per row.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	for _, row := range rows(s) {
		if row != "      " {
			t.Errorf("new row = %q, want blanks", row)
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], 'X')
		s.SetCell(p[0], p[1], 'X', ColorRed)
		if s.GetCell(p[0], p[1]) != blankCell {
			t.Errorf("GetCell%v should be blank", p)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out of bounds writes leaked into the buffer")
	}
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, '#', ColorGold)

	if cell := s.GetCell(1, 1); cell.Rune != '#' || cell.Color != ColorGold {
		t.Errorf("GetCell(1, 1) = %+v, want '#' in gold", cell)
	}

	// Set keeps the existing color
	s.Set(1, 1, '*')
	if cell := s.GetCell(1, 1); cell.Rune != '*' || cell.Color != ColorGold {
		t.Errorf("Set changed the color: %+v", cell)
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(3, 2)

	s.Fill('~', ColorSky)
	if got := s.String(); got != "~~~\n~~~" {
		t.Errorf("after Fill = %q", got)
	}
	if s.GetCell(2, 1).Color != ColorSky {
		t.Error("Fill should color every cell")
	}

	s.Clear()
	if got := s.String(); got != "   \n   " {
		t.Errorf("after Clear = %q", got)
	}
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 1, "Hi", " Hi     "},
		{"clipped right", 6, "Score", "      Sc"},
		{"clipped left", -2, "Best", "st      "},
		{"multibyte", 0, "Muñeco", "Muñeco  "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			s.DrawText(tc.x, 0, tc.text, ColorWhite)
			if got := s.Row(0); got != tc.want {
				t.Errorf("row = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Game Over!", ColorBrightRed)

	if got := s.Row(1); got != "     Game Over!     " {
		t.Errorf("row = %q", got)
	}

	// Rune count, not bytes, decides the offset
	s.Clear()
	s.DrawTextCentered(0, "ñññ", ColorDefault)
	if s.Get(8, 0) != 'ñ' || s.Get(11, 0) != ' ' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawRectAndLine(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGrass)
	s.DrawHLine(0, 3, 10, '=', ColorAsphalt)

	want := []string{
		"      ",
		" ###  ",
		" ###  ",
		"======",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, want %q", y, row, want[y])
		}
	}
	if s.GetCell(5, 3).Color != ColorAsphalt {
		t.Error("line should carry its color")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Hello", ColorDefault)
	s.DrawText(0, 5, "World", ColorDefault)

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if s.Row(0) != "Hell" {
		t.Errorf("row 0 = %q", s.Row(0))
	}

	s.Resize(8, 6)
	if s.Row(0) != "Hell    " {
		t.Errorf("enlarging should keep content, row 0 = %q", s.Row(0))
	}
	if s.Row(5) != "        " {
		t.Errorf("cropped rows should not come back, row 5 = %q", s.Row(5))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(5, 2)
	if got := s.Row(-1); got != "     " {
		t.Errorf("Row(-1) = %q, want blanks", got)
	}
	if got := s.Row(2); got != "     " {
		t.Errorf("Row(2) = %q, want blanks", got)
	}
}
