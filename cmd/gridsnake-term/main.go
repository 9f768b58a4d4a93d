package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/snake"
	"gridsnake/term"
)

var (
	cellsFlag  = flag.Int("cells", snake.DefaultTotalCells, "total board cells, a square number")
	lenFlag    = flag.Int("len", snake.DefaultSnakeLen, "initial snake length")
	tickFlag   = flag.Duration("tick", snake.DefaultTickerDelay, "tick interval")
	strictFlag = flag.Bool("strict", false, "fail on off-board corner steps and self collisions")
	autoFlag   = flag.Bool("autopilot", false, "start with the autopilot steering")
	muteFlag   = flag.Bool("mute", false, "disable sound")
	logFlag    = flag.String("log", "", "write log output to this file")
)

func main() {
	flag.Parse()

	// The screen owns the tty, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := snake.DefaultConfig()
	cfg.TotalCells = *cellsFlag
	cfg.SnakeLen = *lenFlag
	cfg.TickerDelay = *tickFlag
	cfg.StrictBounds = *strictFlag
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "gridsnake crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	sound := term.NewSound()
	if !*muteFlag {
		if err := sound.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sound.Close()

	app, err := term.NewApp(screen, cfg, *autoFlag, snake.WithEventHook(sound.OnEvent))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	app.Run()
	screen.Fini()

	v := app.Game().Snapshot()
	fmt.Printf("length %d, score %d, played %s\n", v.Len, v.Score, time.Since(start).Round(time.Second))
}
