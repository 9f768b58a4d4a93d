package main

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"gridsnake/snake"
)

// Conn manages a single WebSocket player session and the game it owns
type Conn struct {
	ID     string
	ws     *websocket.Conn
	game   *snake.Game
	mu     sync.Mutex // protects ws writes and closed
	closed bool
}

// NewConn creates a new connection wrapper
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID: uuid.New().String(),
		ws: ws,
	}
}

// Send serializes msg to JSON and writes it to the WebSocket
func (c *Conn) Send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Close marks connection closed
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.ws.Close()
}

// onEvent forwards game events that the client must hear about. It runs
// under the game lock and must not call back into the game.
func (c *Conn) onEvent(ev snake.Event) {
	switch ev.Kind {
	case snake.EventFailed:
		log.Printf("game over for %s: length %d, score %d", c.ID, ev.Len, ev.Score)
		_ = c.Send(GameOverMsg{Type: MsgGameOver, Score: ev.Score, Length: ev.Len})
	case snake.EventBoardFull:
		log.Printf("board full for %s at length %d", c.ID, ev.Len)
	}
}

// ConnManager manages all active connections
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty connection manager
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// Add registers a connection
func (m *ConnManager) Add(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
}

// Remove unregisters a connection
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Count returns the number of active connections
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// Snapshot returns a copy of all current connections
func (m *ConnManager) Snapshot() []*Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	return list
}

// ReadLoop handles incoming messages for a connection until it disconnects.
// onDisconnect is called when the connection closes.
func (c *Conn) ReadLoop(onDisconnect func(conn *Conn)) {
	defer func() {
		onDisconnect(c)
		c.Close()
	}()

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error for %s: %v", c.ID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("bad message from %s: %v", c.ID, err)
			continue
		}
		c.handle(msg)
	}
}

func (c *Conn) handle(msg ClientMessage) {
	switch msg.Type {
	case MsgDirection:
		if msg.Direction == nil || !c.game.ChangeDirection(snake.Direction(*msg.Direction)) {
			log.Printf("bad direction from %s: %v", c.ID, msg.Direction)
		}

	case MsgNewGame:
		c.game.NewGame()

	case MsgStart:
		c.game.Start()

	case MsgPause:
		c.game.Stop()

	case MsgAutopilot:
		if msg.On == 1 {
			c.game.SetPilot(snake.Autopilot{})
		} else {
			c.game.SetPilot(nil)
		}

	default:
		log.Printf("unknown message type %q from %s", msg.Type, c.ID)
	}
}
