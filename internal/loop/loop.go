// Package loop provides the main game loop and state management.
package loop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/midline/internal/input"
)

// Terminal is the character grid the game plays on.
type Terminal interface {
	Canvas

	// Size reports the grid once; it is not expected to change.
	Size() (width, height int)
	Flush() error
	Flash() error
	// PollKey never blocks and returns input.KeyNone when idle.
	PollKey() input.Key
	WaitKey() input.Key
}

// Options tunes a session. The zero value plays a normal game.
type Options struct {
	// Rand drives enemy spawns. Nil seeds a fresh source from the clock.
	Rand Rand
	// FrameTime is the length of a tick. Zero means FrameTime; negative
	// disables pacing.
	FrameTime time.Duration
	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}

// Result is how a session ended.
type Result struct {
	Score      int
	Difficulty int
	Ticks      int  // loop iterations played
	Quit       bool // the player left before losing
}

// Run plays one session on t with the Step -> Render -> Input cycle until the
// player quits or runs out of health. On game over it shows the final score
// and waits for a key before returning. t stays open; the caller closes it.
func Run(t Terminal, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frameTime := opts.FrameTime
	if frameTime == 0 {
		frameTime = FrameTime
	}

	width, height := t.Size()
	st, err := NewState(width, height)
	if err != nil {
		return Result{}, err
	}
	spawner := NewSpawner(opts.Rand)
	logger.Debug("session started", "width", width, "height", height)

	ticks := 0
	for {
		frameStart := time.Now()

		if st.Over() {
			res := result(st, ticks, false)
			logger.Debug("game over", "score", res.Score, "difficulty", res.Difficulty, "ticks", ticks)
			return res, gameOver(t, st)
		}

		// ===== UPDATE PHASE =====
		ev := Step(st, spawner)
		ticks++
		logEvents(logger, st, ev)

		// ===== DRAW PHASE =====
		Render(t, st)
		if err := t.Flush(); err != nil {
			return result(st, ticks, false), fmt.Errorf("draw frame: %w", err)
		}

		// ===== INPUT PHASE =====
		if k := t.PollKey(); HandleKey(st, k) == ActionQuit {
			res := result(st, ticks, true)
			logger.Debug("quit", "key", k.String(), "score", res.Score, "ticks", ticks)
			return res, nil
		}

		// ===== FRAME TIMING =====
		if frameTime > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameTime {
				time.Sleep(frameTime - elapsed)
			}
		}
	}
}

// gameOver shows the final screen and waits for any key.
func gameOver(t Terminal, st *State) error {
	drawGameOver(t, st)
	if err := t.Flush(); err != nil {
		return fmt.Errorf("draw game over: %w", err)
	}
	if err := t.Flash(); err != nil {
		return fmt.Errorf("flash: %w", err)
	}
	t.WaitKey()
	return nil
}

func result(st *State, ticks int, quit bool) Result {
	return Result{
		Score:      st.Player.Score,
		Difficulty: st.Level,
		Ticks:      ticks,
		Quit:       quit,
	}
}

func logEvents(logger *log.Logger, st *State, ev Events) {
	if ev.DifficultyUp {
		logger.Debug("difficulty up", "level", st.Level, "score", st.Player.Score)
	}
	if ev.WeaponUp {
		logger.Debug("weapon up", "level", st.Player.Level)
	}
	if ev.Breaches > 0 {
		logger.Debug("wall breached", "count", ev.Breaches, "hp", st.Player.HP)
	}
}
