package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"gridsnake/snake"
)

// ipRateLimiter tracks last connection time per IP to prevent abuse
type ipRateLimiter struct {
	mu       sync.Mutex
	cooldown time.Duration
	times    map[string]time.Time
}

func newIPRateLimiter(cooldown time.Duration) *ipRateLimiter {
	return &ipRateLimiter{cooldown: cooldown, times: make(map[string]time.Time)}
}

// run drops stale entries every minute until ctx is done
func (rl *ipRateLimiter) run(ctx context.Context) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := time.Now().Add(-rl.cooldown)
			for ip, t := range rl.times {
				if t.Before(cutoff) {
					delete(rl.times, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// allow returns true if this IP can connect, and records the attempt
func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if last, ok := rl.times[ip]; ok {
		if time.Since(last) < rl.cooldown {
			return false
		}
	}
	rl.times[ip] = time.Now()
	return true
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development; tighten in production
		return true
	},
	ReadBufferSize:    1024,
	WriteBufferSize:   4096,
	EnableCompression: true,
}

// sendErrorAndClose sends an error message via WebSocket then closes the connection
func sendErrorAndClose(ws *websocket.Conn, msg string) {
	data, _ := json.Marshal(ErrorMsg{Type: MsgError, Message: msg})
	_ = ws.WriteMessage(websocket.TextMessage, data)
	ws.Close()
}

// Server hands every websocket connection its own game session
type Server struct {
	cfg     Config
	side    int
	conns   *ConnManager
	limiter *ipRateLimiter
}

// NewServer validates the game geometry once so that welcome messages can
// carry the board size before a session renders anything.
func NewServer(cfg Config) (*Server, error) {
	geo, err := snake.NewGeometry(cfg.Game.TotalCells)
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:     cfg,
		side:    geo.Side(),
		conns:   NewConnManager(),
		limiter: newIPRateLimiter(cfg.IPCooldown),
	}, nil
}

// Handler routes the websocket endpoint and the static client
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(WebSocketPath, s.handleWS)
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.StaticDir)))
	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	// Extract client IP (handle X-Forwarded-For for reverse proxies)
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip, _, _ = net.SplitHostPort(r.RemoteAddr)
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	// Check limits after upgrade so client can receive error messages
	if s.conns.Count() >= s.cfg.MaxSessions {
		sendErrorAndClose(ws, "Server full. Please try again later.")
		return
	}
	if !s.limiter.allow(ip) {
		sendErrorAndClose(ws, "Too many connections. Please wait a moment.")
		return
	}

	ws.EnableWriteCompression(true)
	conn := NewConn(ws)

	// Send welcome first so the client can size the board before the first frame
	_ = conn.Send(WelcomeMsg{
		Type:      MsgWelcome,
		ID:        conn.ID,
		Side:      s.side,
		CellWidth: s.cfg.Game.CellWidth,
		TickMS:    s.cfg.Game.TickerDelay.Milliseconds(),
	})

	game, err := snake.New(s.cfg.Game, newFrameRenderer(conn, s.cfg.Game.TotalCells),
		snake.WithEventHook(conn.onEvent))
	if err != nil {
		log.Printf("session setup for %s: %v", conn.ID, err)
		sendErrorAndClose(ws, "Game setup failed.")
		return
	}
	conn.game = game
	s.conns.Add(conn)
	game.Start()
	log.Printf("player connected: %s", conn.ID)

	// Blocking read loop, runs until client disconnects
	conn.ReadLoop(func(c *Conn) {
		c.game.Stop()
		s.conns.Remove(c.ID)
		log.Printf("player disconnected: %s", c.ID)
	})
}

// Shutdown stops every game and closes every connection
func (s *Server) Shutdown() {
	for _, c := range s.conns.Snapshot() {
		c.game.Stop()
		c.Close()
	}
}

func run(ctx context.Context, cfg Config) error {
	srv, err := NewServer(cfg)
	if err != nil {
		return err
	}
	httpSrv := &http.Server{Addr: cfg.Addr, Handler: srv.Handler()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		srv.limiter.run(ctx)
		return nil
	})
	g.Go(func() error {
		log.Printf("server listening on %s (%dx%d board, tick %s)",
			cfg.Addr, srv.side, srv.side, cfg.Game.TickerDelay)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		srv.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func main() {
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("server error: %v", err)
	}
	log.Printf("server stopped")
}
