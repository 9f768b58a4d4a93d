package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	ch    rune
	style tcell.Style
}

type fakeSurface struct {
	cells map[[2]int]cell
	shows int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{cells: make(map[[2]int]cell)}
}

func (f *fakeSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = cell{ch: primary, style: style}
}

func (f *fakeSurface) Show() { f.shows++ }

func TestRendererBoardLayout(t *testing.T) {
	s := newFakeSurface()
	r := NewRenderer(s)
	r.SetBoardDimensions(3, 15)

	corners := map[[2]int]rune{{0, 0}: '┌', {7, 0}: '┐', {0, 4}: '└', {7, 4}: '┘'}
	for pos, want := range corners {
		if got := s.cells[pos].ch; got != want {
			t.Errorf("corner %v: expected %q, got %q", pos, want, got)
		}
	}

	tests := []struct {
		index, x, y int
	}{
		{1, 1, 1},
		{3, 5, 1},
		{4, 1, 2},
		{9, 5, 3},
	}
	for _, tt := range tests {
		x, y, ok := r.CellPosition(tt.index)
		if !ok || x != tt.x || y != tt.y {
			t.Errorf("CellPosition(%d): expected (%d,%d), got (%d,%d,%v)", tt.index, tt.x, tt.y, x, y, ok)
		}
	}
	for _, idx := range []int{0, -3, 10} {
		if _, _, ok := r.CellPosition(idx); ok {
			t.Errorf("CellPosition(%d): expected off board", idx)
		}
	}
}

func TestRendererPaintAndClear(t *testing.T) {
	s := newFakeSurface()
	r := NewRenderer(s)
	r.SetBoardDimensions(11, 15)

	r.Paint(14, "LightGreen")
	want := tcell.StyleDefault.Background(tcell.ColorLightGreen)
	for _, x := range []int{5, 6} {
		if got := s.cells[[2]int{x, 2}].style; got != want {
			t.Errorf("column %d: expected light green background", x)
		}
	}

	r.Clear(14)
	if got := s.cells[[2]int{5, 2}].style; got != tcell.StyleDefault {
		t.Error("expected the cleared cell to use the default style")
	}

	before := len(s.cells)
	r.Paint(0, "green")
	r.Paint(-4, "green")
	r.Paint(200, "green")
	if len(s.cells) != before {
		t.Error("off-board paints must be ignored")
	}

	r.Flush()
	if s.shows != 1 {
		t.Errorf("expected one Show, got %d", s.shows)
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		tag  string
		want tcell.Color
	}{
		{"green", tcell.ColorGreen},
		{"LightGreen", tcell.ColorLightGreen},
		{"Crimson", tcell.ColorCrimson},
	}
	for _, tt := range tests {
		if got := ColorFor(tt.tag); got != tt.want {
			t.Errorf("ColorFor(%q): expected %v, got %v", tt.tag, tt.want, got)
		}
	}
}

func TestDrawStatus(t *testing.T) {
	s := newFakeSurface()
	r := NewRenderer(s)
	r.DrawStatus("ignored before the board exists")
	if len(s.cells) != 0 {
		t.Fatal("expected nothing drawn without a board")
	}

	r.SetBoardDimensions(3, 15)
	r.DrawStatus("len 3")
	if got := s.cells[[2]int{0, 5}].ch; got != 'l' {
		t.Errorf("expected status on row 5, got %q", got)
	}
	if got := s.cells[[2]int{7, 5}].ch; got != ' ' {
		t.Errorf("expected padding to the board width, got %q", got)
	}
}
