package main

// Protocol uses single-character JSON keys to minimize wire size.
//
// Message type constants (value of "t" field):
//   Client → Server:
//     "d" = direction {"t":"d","d":1}      (0 right, 1 down, 2 left, 3 up)
//     "n" = new game  {"t":"n"}
//     "s" = start     {"t":"s"}
//     "p" = pause     {"t":"p"}
//     "a" = autopilot {"t":"a","o":1}      (o=1 on, 0 off)
//   Server → Client:
//     "w" = welcome   {"t":"w","i":"id","n":11,"c":15,"k":500}
//     "r" = frame     {"t":"r","o":[{"o":"p","i":4,"c":"green"},...]}
//     "o" = game over {"t":"o","p":score,"l":length}
//     "e" = error     {"t":"e","m":"message"}
//
// RenderOp: {"o":"b","i":side,"w":cellWidth} board,
//           {"o":"p","i":index,"c":color}    paint,
//           {"o":"c","i":index}              clear

// Message type identifiers
const (
	MsgDirection = "d"
	MsgNewGame   = "n"
	MsgStart     = "s"
	MsgPause     = "p"
	MsgAutopilot = "a"

	MsgWelcome  = "w"
	MsgFrame    = "r"
	MsgGameOver = "o"
	MsgError    = "e"
)

// Render op identifiers
const (
	OpBoard = "b"
	OpPaint = "p"
	OpClear = "c"
)

// ClientMessage is the base incoming message from the browser.
// Direction is a pointer so that Right (0) is distinguishable from absent.
type ClientMessage struct {
	Type      string `json:"t"`
	Direction *int   `json:"d,omitempty"`
	On        int    `json:"o,omitempty"`
}

// WelcomeMsg is sent to a player immediately on WebSocket connect.
type WelcomeMsg struct {
	Type      string `json:"t"`
	ID        string `json:"i"`
	Side      int    `json:"n"`
	CellWidth int    `json:"c"`
	TickMS    int64  `json:"k"`
}

// RenderOp is one renderer call
type RenderOp struct {
	Op    string `json:"o"`
	Index int    `json:"i"`
	Color string `json:"c,omitempty"`
	Width int    `json:"w,omitempty"`
}

// FrameMsg batches the render ops of one game operation
type FrameMsg struct {
	Type string     `json:"t"`
	Ops  []RenderOp `json:"o"`
}

// GameOverMsg is sent when the snake fails
type GameOverMsg struct {
	Type   string `json:"t"`
	Score  int    `json:"p"`
	Length int    `json:"l"`
}

// ErrorMsg is sent before the server closes a connection
type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}
