package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/snake"
)

const statusRefresh = 100 * time.Millisecond

// App runs one game on a tcell screen
type App struct {
	screen    tcell.Screen
	renderer  *Renderer
	game      *snake.Game
	autopilot bool
}

// NewApp builds the game on screen. The sound hook, if any, is passed in opts.
func NewApp(screen tcell.Screen, cfg snake.Config, autopilot bool, opts ...snake.Option) (*App, error) {
	r := NewRenderer(screen)
	if autopilot {
		opts = append(opts, snake.WithPilot(snake.Autopilot{}))
	}
	game, err := snake.New(cfg, r, opts...)
	if err != nil {
		return nil, err
	}
	a := &App{screen: screen, renderer: r, game: game, autopilot: autopilot}
	a.drawStatus()
	return a, nil
}

// Game returns the running session
func (a *App) Game() *snake.Game { return a.game }

// Handle applies one key and reports false when the app should quit.
func (a *App) Handle(key tcell.Key, ch rune) bool {
	if d, ok := KeyDirection(key, ch); ok {
		a.game.ChangeDirection(d)
		return true
	}

	switch KeyAction(key, ch) {
	case ActionQuit:
		return false
	case ActionNewGame:
		a.game.NewGame()
	case ActionPause:
		if a.game.Running() {
			a.game.Stop()
		} else {
			a.game.Start()
		}
	case ActionAutopilot:
		a.autopilot = !a.autopilot
		if a.autopilot {
			a.game.SetPilot(snake.Autopilot{})
		} else {
			a.game.SetPilot(nil)
		}
	}
	a.drawStatus()
	return true
}

func (a *App) drawStatus() {
	v := a.game.Snapshot()
	state := "paused"
	switch {
	case v.State == snake.Failed:
		state = "GAME OVER"
	case v.Running:
		state = "running"
	}
	pilot := ""
	if a.autopilot {
		pilot = " [auto]"
	}
	a.renderer.DrawStatus(fmt.Sprintf("len %d  score %d  %s%s", v.Len, v.Score, state, pilot))
}

// Run starts the game and processes events until quit
func (a *App) Run() {
	a.game.Start()
	defer a.game.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(statusRefresh)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.Handle(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case <-ticker.C:
			a.drawStatus()
		}
	}
}
