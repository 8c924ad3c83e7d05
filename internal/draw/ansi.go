package draw

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/midline/internal/input"
)

// FlashDuration is how long the screen stays inverted during Flash.
const FlashDuration = 120 * time.Millisecond

// ANSI is a terminal driven by raw escape sequences. It works on a local tty
// in raw mode as well as on an SSH session channel.
type ANSI struct {
	cw     *ChunkWriter
	keys   *input.Stream
	width  int
	height int

	flashDelay time.Duration
}

// NewANSI hides the cursor, clears w and starts reading keys from r. The grid
// size is taken once from sizeFunc (DefaultTermSizeFunc when nil) and stays
// fixed for the session.
func NewANSI(r *bufio.Reader, w io.Writer, sizeFunc TermSizeFunc) (*ANSI, error) {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	width, height, err := sizeFunc()
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}

	a := &ANSI{
		cw:         NewChunkWriter(w),
		keys:       input.StartStream(r),
		width:      width,
		height:     height,
		flashDelay: FlashDuration,
	}

	a.cw.WriteString(seqHideCursor)
	a.cw.WriteString(seqClear)
	if err := a.cw.Flush(); err != nil {
		return nil, fmt.Errorf("prepare terminal: %w", err)
	}
	return a, nil
}

// Size returns the grid dimensions.
func (a *ANSI) Size() (width, height int) {
	return a.width, a.height
}

// Clear starts a new frame with an erased screen.
func (a *ANSI) Clear() {
	a.cw.WriteString(seqClear)
}

// Put writes s with its first cell at the 0-based position (col, row).
// Anything outside the grid is dropped.
func (a *ANSI) Put(col, row int, s string) {
	if row < 0 || row >= a.height || col >= a.width {
		return
	}
	if col < 0 {
		if -col >= len(s) {
			return
		}
		s = s[-col:]
		col = 0
	}
	if col+len(s) > a.width {
		s = s[:a.width-col]
	}
	a.cw.WriteAt(col+1, row+1, s)
}

// Flush sends the frame to the terminal.
func (a *ANSI) Flush() error {
	return a.cw.Flush()
}

// Flash inverts the screen briefly and rings the bell.
func (a *ANSI) Flash() error {
	a.cw.WriteString(seqReverseOn)
	if err := a.cw.Flush(); err != nil {
		return err
	}
	time.Sleep(a.flashDelay)
	a.cw.WriteString(seqReverseOff)
	a.cw.WriteString(seqBell)
	return a.cw.Flush()
}

// PollKey returns the next key without blocking.
func (a *ANSI) PollKey() input.Key {
	return a.keys.Poll()
}

// WaitKey blocks for the next key.
func (a *ANSI) WaitKey() input.Key {
	return a.keys.Wait()
}

// Close clears the screen and shows the cursor again.
func (a *ANSI) Close() error {
	a.cw.WriteString(seqClear)
	a.cw.WriteString(seqShowCursor)
	return a.cw.Flush()
}
