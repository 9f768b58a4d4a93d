package snake

import (
	"errors"
	"log"
	"sync"
)

// Option configures a Game
type Option func(*Game)

// WithTimer replaces the default TickerTimer
func WithTimer(t Timer) Option {
	return func(g *Game) { g.timer = t }
}

// WithRand sets the random source used for food placement
func WithRand(intn func(n int) int) Option {
	return func(g *Game) { g.intn = intn }
}

// WithPilot asks p for a direction before every tick
func WithPilot(p Pilot) Option {
	return func(g *Game) { g.pilot = p }
}

// WithLogger sets the logger, log.Default() otherwise
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithEventHook registers fn for session events
func WithEventHook(fn func(Event)) Option {
	return func(g *Game) { g.hooks = append(g.hooks, fn) }
}

// View is a copy of the session state
type View struct {
	Body       []int
	Foods      []int
	Direction  Direction
	Len        int
	State      State
	Running    bool
	Score      int
	Side       int
	TotalCells int
}

// Head returns the newest body index, 0 for an empty body
func (v View) Head() int {
	if len(v.Body) == 0 {
		return 0
	}
	return v.Body[len(v.Body)-1]
}

// Game is one session: it owns its geometry, snake and food, drives the
// renderer and runs the tick task. All methods are safe for concurrent use.
type Game struct {
	mu sync.Mutex

	cfg      Config
	geo      *Geometry
	snake    *Snake
	food     *FoodPlacer
	renderer Renderer

	timer Timer
	task  Handle // nil when stopped
	gen   int    // bumped on every Start, stale callbacks compare against it

	snakeColor string
	intn       func(n int) int
	pilot      Pilot
	logger     *log.Logger
	hooks      []func(Event)
}

// New validates cfg, builds the session and performs the setup render. It
// does not start ticking. A *ConfigError is returned before any rendering.
func New(cfg Config, r Renderer, opts ...Option) (*Game, error) {
	if r == nil {
		return nil, configErrorf("renderer", "required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		renderer: r,
		timer:    TickerTimer{},
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.calculate(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.render()
	return g, nil
}

// calculate builds the geometry and snake for a fresh session
func (g *Game) calculate() error {
	geo, err := NewGeometry(g.cfg.TotalCells)
	if err != nil {
		return err
	}
	s, err := NewSnake(geo, g.cfg.SnakeLen, g.cfg.Direction)
	if err != nil {
		return err
	}
	s.SetStrict(g.cfg.StrictBounds)

	g.geo = geo
	g.snake = s
	g.food = NewFoodPlacer(geo.TotalCells(), g.intn)
	g.snakeColor = g.cfg.Colors.Snake
	return nil
}

// render draws the board, the snake and one food. Caller holds mu.
func (g *Game) render() {
	g.renderer.SetBoardDimensions(g.geo.Side(), g.cfg.CellWidth)
	g.paintSnake()
	g.placeFood()
	g.flush()
}

func (g *Game) paintSnake() {
	for _, c := range g.snake.body {
		g.renderer.Paint(c, g.snakeColor)
	}
}

func (g *Game) placeFood() {
	cell, err := g.food.Place(g.snake.Occupies)
	if errors.Is(err, ErrBoardFull) {
		g.logger.Printf("snake: board full at length %d, no food placed", g.snake.Len())
		g.emit(Event{Kind: EventBoardFull, Len: g.snake.Len(), Score: g.score()})
		return
	}
	g.snake.AddFood(cell)
	g.renderer.Paint(cell, g.cfg.Colors.Food)
}

func (g *Game) flush() {
	if f, ok := g.renderer.(Flusher); ok {
		f.Flush()
	}
}

func (g *Game) emit(ev Event) {
	for _, fn := range g.hooks {
		fn(ev)
	}
}

func (g *Game) score() int {
	return g.snake.Len() - g.cfg.SnakeLen
}

// Start schedules the tick task. It is a no-op when a task is already
// running or the snake has failed, and reports whether a task was started.
func (g *Game) Start() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.startLocked()
}

func (g *Game) startLocked() bool {
	if g.task != nil || g.snake.State() == Failed {
		return false
	}
	g.gen++
	gen := g.gen
	g.task = g.timer.Schedule(g.cfg.TickerDelay, func() { g.onTick(gen) })
	return true
}

// Stop cancels the tick task; no-op when not running.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopLocked()
}

func (g *Game) stopLocked() {
	if g.task == nil {
		return
	}
	g.task.Cancel()
	g.task = nil
}

// Running reports whether the tick task is active
func (g *Game) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.task != nil
}

func (g *Game) onTick(gen int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.task == nil || gen != g.gen {
		return
	}
	g.move()
}

// Step runs one tick and its render pass immediately, whether or not the
// task is running. It returns ErrGameOver after a failure.
func (g *Game) Step() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.move()
}

// move is one tick followed by its render. Caller holds mu.
func (g *Game) move() error {
	if g.pilot != nil && g.snake.State() == Running {
		g.snake.ChangeDirection(g.pilot.Next(g.geo, g.viewLocked()))
	}

	step, err := g.snake.Tick()
	if err != nil {
		return err
	}
	if step.Vacated {
		g.renderer.Clear(step.Dropped)
	}

	if step.Failed {
		g.stopLocked()
		g.snakeColor = g.cfg.Colors.Fail
		g.paintSnake()
		g.flush()
		g.emit(Event{Kind: EventFailed, Index: step.Next, Len: g.snake.Len(), Score: g.score()})
		return nil
	}

	if step.Ate {
		g.placeFood()
		g.emit(Event{Kind: EventAte, Index: step.Next, Len: g.snake.Len(), Score: g.score()})
	}
	g.paintSnake()
	g.flush()
	return nil
}

// ChangeDirection sets the heading used by the next tick. The last call
// before a tick wins. It reports false for an unknown direction.
func (g *Game) ChangeDirection(d Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snake.ChangeDirection(d)
}

// SetPilot installs or, with nil, removes the autopilot
func (g *Game) SetPilot(p Pilot) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pilot = p
}

// NewGame stops the task, restores the initial state, redraws everything
// and starts ticking again.
func (g *Game) NewGame() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stopLocked()
	g.snake.Reset()
	g.snakeColor = g.cfg.Colors.Snake
	g.render()
	g.emit(Event{Kind: EventReset, Len: g.snake.Len()})
	g.startLocked()
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewLocked()
}

func (g *Game) viewLocked() View {
	return View{
		Body:       g.snake.Body(),
		Foods:      g.snake.Foods(),
		Direction:  g.snake.Direction(),
		Len:        g.snake.Len(),
		State:      g.snake.State(),
		Running:    g.task != nil,
		Score:      g.score(),
		Side:       g.geo.Side(),
		TotalCells: g.geo.TotalCells(),
	}
}

// Geometry returns the session's grid geometry
func (g *Game) Geometry() *Geometry {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.geo
}

// Config returns the configuration the session was built with
func (g *Game) Config() Config {
	return g.cfg
}
