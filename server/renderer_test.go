package main

import (
	"reflect"
	"testing"
)

type captureSender struct {
	frames []FrameMsg
}

func (c *captureSender) Send(msg any) error {
	c.frames = append(c.frames, msg.(FrameMsg))
	return nil
}

func TestFrameRendererBatches(t *testing.T) {
	out := &captureSender{}
	r := newFrameRenderer(out, 121)

	r.Paint(5, "green")
	r.SetBoardDimensions(11, 15)
	r.Paint(1, "green")
	r.Clear(2)
	r.Paint(0, "green")   // off board
	r.Paint(122, "green") // off board
	r.Flush()
	r.Flush()

	if len(out.frames) != 1 {
		t.Fatalf("expected one frame, got %d", len(out.frames))
	}
	want := []RenderOp{
		{Op: OpBoard, Index: 11, Width: 15},
		{Op: OpPaint, Index: 1, Color: "green"},
		{Op: OpClear, Index: 2},
	}
	if got := out.frames[0].Ops; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if out.frames[0].Type != MsgFrame {
		t.Errorf("expected frame type %q, got %q", MsgFrame, out.frames[0].Type)
	}
}
