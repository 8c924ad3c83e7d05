package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/midline/internal/draw"
	"github.com/tomz197/midline/internal/loop"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "midline"})

	res, err := play()
	if err != nil {
		logger.Error("game error", "err", err)
		return 1
	}

	logger.Info("bye", "score", res.Score, "difficulty", res.Difficulty)
	return 0
}

// play holds the tcell screen until it returns, so Fini always runs.
func play() (loop.Result, error) {
	screen, err := draw.NewTcell()
	if err != nil {
		return loop.Result{}, fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		_ = screen.Close()
	}()

	return loop.Run(screen, loop.Options{})
}
