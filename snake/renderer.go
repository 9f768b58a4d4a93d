package snake

// Renderer paints the board. Indices outside 1..TotalCells can reach a
// renderer when StrictBounds is off and must be ignored by it.
type Renderer interface {
	SetBoardDimensions(side, cellWidth int)
	Paint(index int, color string)
	Clear(index int)
}

// Flusher is implemented by renderers that batch operations. Flush is called
// once after every state-changing game operation.
type Flusher interface {
	Flush()
}

// EventKind classifies session events
type EventKind int

const (
	EventAte EventKind = iota
	EventFailed
	EventReset
	EventBoardFull
)

func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventFailed:
		return "failed"
	case EventReset:
		return "reset"
	case EventBoardFull:
		return "board-full"
	}
	return "unknown"
}

// Event is delivered to hooks while the session lock is held; hooks must not
// call back into the Game.
type Event struct {
	Kind  EventKind
	Index int // cell that was eaten, or the invalid step on failure
	Len   int
	Score int
}
