// Package term draws a snake game on a tcell screen and maps keys to game
// actions.
package term

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// CellColumns is the width of one board cell in terminal columns; two
// columns make cells roughly square.
const CellColumns = 2

// Surface is the part of tcell.Screen the renderer draws on
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer implements snake.Renderer and snake.Flusher on a Surface. The
// board sits at the top-left corner inside a one-cell border with a status
// line below it.
type Renderer struct {
	mu      sync.Mutex
	surface Surface
	side    int
	styles  map[string]tcell.Style
}

// NewRenderer creates a renderer; nothing is drawn until SetBoardDimensions
func NewRenderer(s Surface) *Renderer {
	return &Renderer{surface: s, styles: make(map[string]tcell.Style)}
}

// SetBoardDimensions draws the border and an empty board. cellWidth is a
// pixel hint for graphical renderers and is ignored here.
func (r *Renderer) SetBoardDimensions(side, cellWidth int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.side = side

	right := side*CellColumns + 1
	bottom := side + 1
	for x := 1; x < right; x++ {
		r.surface.SetContent(x, 0, '─', nil, borderStyle)
		r.surface.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		r.surface.SetContent(0, y, '│', nil, borderStyle)
		r.surface.SetContent(right, y, '│', nil, borderStyle)
	}
	r.surface.SetContent(0, 0, '┌', nil, borderStyle)
	r.surface.SetContent(right, 0, '┐', nil, borderStyle)
	r.surface.SetContent(0, bottom, '└', nil, borderStyle)
	r.surface.SetContent(right, bottom, '┘', nil, borderStyle)

	for i := 1; i <= side*side; i++ {
		r.fill(i, ' ', emptyStyle)
	}
}

// Paint fills a cell with the named color
func (r *Renderer) Paint(index int, color string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fill(index, ' ', r.style(color))
}

// Clear empties a cell
func (r *Renderer) Clear(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fill(index, ' ', emptyStyle)
}

// Flush pushes the frame to the terminal
func (r *Renderer) Flush() {
	r.surface.Show()
}

// DrawStatus writes text on the line under the board, padded to the board width
func (r *Renderer) DrawStatus(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.side == 0 {
		return
	}
	y := r.side + 2
	width := r.side*CellColumns + 2
	runes := []rune(text)
	if len(runes) > width {
		width = len(runes)
	}
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.surface.SetContent(x, y, ch, nil, statusStyle)
	}
	r.surface.Show()
}

// CellPosition returns the left screen column and row of a cell index.
// ok is false for indices off the board.
func (r *Renderer) CellPosition(index int) (x, y int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position(index)
}

func (r *Renderer) position(index int) (x, y int, ok bool) {
	if r.side == 0 || index < 1 || index > r.side*r.side {
		return 0, 0, false
	}
	row, col := (index-1)/r.side, (index-1)%r.side
	return 1 + col*CellColumns, 1 + row, true
}

func (r *Renderer) fill(index int, ch rune, style tcell.Style) {
	x, y, ok := r.position(index)
	if !ok {
		return
	}
	for dx := 0; dx < CellColumns; dx++ {
		r.surface.SetContent(x+dx, y, ch, nil, style)
	}
}

// style resolves color names case-insensitively ("LightGreen", "crimson")
// or as #rrggbb.
func (r *Renderer) style(color string) tcell.Style {
	if st, ok := r.styles[color]; ok {
		return st
	}
	st := tcell.StyleDefault.Background(ColorFor(color))
	r.styles[color] = st
	return st
}

// ColorFor maps a color tag to a tcell color
func ColorFor(tag string) tcell.Color {
	return tcell.GetColor(strings.ToLower(tag))
}
