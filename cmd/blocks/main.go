package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/go-blocks/internal/game"
	"github.com/amalg/go-blocks/internal/ui"
)

func main() {
	defaults := game.DefaultConfig()

	rows := flag.Int("rows", defaults.Rows, "Board height in cells")
	cols := flag.Int("cols", defaults.Cols, "Board width in cells")
	tickRate := flag.Int("tick-rate", defaults.TickRate, "Frames per second")
	gravity := flag.Duration("gravity", defaults.GravityInterval, "Time between automatic drops")
	seed := flag.Uint64("seed", 0, "Piece sequence seed (default: random)")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	flag.Parse()

	config := defaults
	config.Rows = *rows
	config.Cols = *cols
	config.Spawn = game.Position{X: *cols / 2, Y: 1}
	config.TickRate = *tickRate
	config.GravityInterval = *gravity

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Redirect log output before the engine starts.
	// Any stderr output will corrupt Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[MAIN] Seed %d", *seed)

	engine := game.NewEngine(config, rand.New(rand.NewPCG(*seed, *seed)))
	model := ui.NewModel(engine)

	go engine.Run()

	// Handle OS signals for clean shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		engine.Stop()
		os.Exit(0)
	}()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		engine.Stop()
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	engine.Stop()
}
