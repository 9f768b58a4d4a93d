package term

import (
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/snake"
)

// food always lands on the last cell, away from the starting row
func lastCell(n int) int { return n - 1 }

func newTestApp(t *testing.T, autopilot bool) *App {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := snake.DefaultConfig()
	cfg.TickerDelay = time.Hour
	app, err := NewApp(screen, cfg, autopilot, snake.WithRand(lastCell))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(app.Game().Stop)
	return app
}

func TestAppKeys(t *testing.T) {
	app := newTestApp(t, false)
	g := app.Game()

	if !app.Handle(tcell.KeyDown, 0) {
		t.Fatal("direction keys must not quit")
	}
	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if got := g.Snapshot().Body; !reflect.DeepEqual(got, []int{2, 3, 14}) {
		t.Errorf("expected [2 3 14], got %v", got)
	}

	app.Handle(tcell.KeyRune, 'p')
	if !g.Running() {
		t.Error("pause key should start a stopped game")
	}
	app.Handle(tcell.KeyRune, ' ')
	if g.Running() {
		t.Error("pause key should stop a running game")
	}

	app.Handle(tcell.KeyRune, 'n')
	if got := g.Snapshot().Body; !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("expected a fresh body, got %v", got)
	}

	if app.Handle(tcell.KeyEscape, 0) {
		t.Error("escape should quit")
	}
}

func TestAppAutopilotToggle(t *testing.T) {
	app := newTestApp(t, true)
	if !app.autopilot {
		t.Fatal("expected the autopilot to be on")
	}
	app.Handle(tcell.KeyRune, 'o')
	if app.autopilot {
		t.Error("expected the autopilot to be off")
	}

	// with the pilot gone a plain step keeps heading right
	app.Game().Step()
	if got := app.Game().Snapshot().Head(); got != 4 {
		t.Errorf("expected head 4, got %d", got)
	}
}

func TestNewAppRejectsBadConfig(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	cfg := snake.DefaultConfig()
	cfg.TotalCells = 105
	if _, err := NewApp(screen, cfg, false); err == nil {
		t.Error("expected a config error")
	}
}
