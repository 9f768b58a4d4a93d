package main

import (
	"log"

	"gridsnake/snake"
)

// sender is the part of Conn the renderer needs
type sender interface {
	Send(msg any) error
}

// frameRenderer buffers render ops and sends them as one frame per game
// operation. The game serializes calls, so no locking is needed here.
type frameRenderer struct {
	out   sender
	total int
	ops   []RenderOp
}

func newFrameRenderer(out sender, totalCells int) *frameRenderer {
	return &frameRenderer{out: out, total: totalCells}
}

func (r *frameRenderer) SetBoardDimensions(side, cellWidth int) {
	// a board op redraws everything, earlier ops are moot
	r.ops = append(r.ops[:0], RenderOp{Op: OpBoard, Index: side, Width: cellWidth})
}

func (r *frameRenderer) Paint(index int, color string) {
	if !r.onBoard(index) {
		return
	}
	r.ops = append(r.ops, RenderOp{Op: OpPaint, Index: index, Color: color})
}

func (r *frameRenderer) Clear(index int) {
	if !r.onBoard(index) {
		return
	}
	r.ops = append(r.ops, RenderOp{Op: OpClear, Index: index})
}

func (r *frameRenderer) onBoard(index int) bool {
	return index >= 1 && index <= r.total
}

// Flush sends the pending ops, if any
func (r *frameRenderer) Flush() {
	if len(r.ops) == 0 {
		return
	}
	frame := FrameMsg{Type: MsgFrame, Ops: r.ops}
	if err := r.out.Send(frame); err != nil {
		log.Printf("send frame (%d ops): %v", len(r.ops), err)
	}
	r.ops = nil
}

var _ snake.Flusher = (*frameRenderer)(nil)
