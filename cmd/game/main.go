package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/midline/internal/draw"
	"github.com/tomz197/midline/internal/loop"
)

func main() {
	os.Exit(run())
}

// run logs only after play has handed the terminal back.
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

// play owns the terminal for the whole session; every return path, panics
// included, restores it.
func play() (loop.Result, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return loop.Result{}, fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	screen, err := draw.NewANSI(bufio.NewReader(os.Stdin), os.Stdout, nil)
	if err != nil {
		return loop.Result{}, fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		_ = screen.Close()
	}()

	return loop.Run(screen, loop.Options{})
}
