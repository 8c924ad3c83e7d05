package draw

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/midline/internal/input"
)

func newTestTcell(t *testing.T) (*Tcell, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	tc, err := newTcell(screen)
	if err != nil {
		t.Fatalf("newTcell: %v", err)
	}
	tc.flashDelay = 0
	t.Cleanup(func() { _ = tc.Close() })
	return tc, screen
}

func cellRune(screen tcell.Screen, col, row int) rune {
	r, _, _, _ := screen.GetContent(col, row)
	if r == 0 {
		return ' '
	}
	return r
}

func TestTcellPutAndFlush(t *testing.T) {
	tc, screen := newTestTcell(t)

	width, height := tc.Size()
	if width <= 0 || height <= 0 {
		t.Fatalf("Size() = %d, %d", width, height)
	}

	tc.Clear()
	tc.Put(2, 1, "['_']")
	if err := tc.Flush(); err != nil {
		t.Fatal(err)
	}

	for i, want := range "['_']" {
		if got := cellRune(screen, 2+i, 1); got != want {
			t.Errorf("cell (%d,1) = %q, want %q", 2+i, got, want)
		}
	}
}

func TestTcellFlashRestoresFrame(t *testing.T) {
	tc, screen := newTestTcell(t)

	tc.Clear()
	tc.Put(0, 0, "GAME OVER")
	if err := tc.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := tc.Flash(); err != nil {
		t.Fatal(err)
	}

	if got := cellRune(screen, 0, 0); got != 'G' {
		t.Errorf("cell (0,0) after flash = %q, want G", got)
	}
	if got := cellRune(screen, 12, 0); got != ' ' {
		t.Errorf("cell (12,0) after flash = %q, want blank", got)
	}
}

func TestTcellClearForgetsFrame(t *testing.T) {
	tc, _ := newTestTcell(t)

	tc.Put(0, 0, "x")
	tc.Clear()
	if len(tc.frame) != 0 {
		t.Errorf("frame holds %d entries after Clear", len(tc.frame))
	}
}

func TestTcellCloseWithFullKeyQueue(t *testing.T) {
	tc, screen := newTestTcell(t)

	for len(tc.keys) < cap(tc.keys) {
		tc.keys <- 'x'
	}
	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}

	closed := make(chan struct{})
	go func() {
		_ = tc.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close() blocked behind a full key queue")
	}

	if got := tc.WaitKey(); got != 'x' {
		t.Errorf("WaitKey() = %v, want a queued x", got)
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want input.Key
	}{
		{tcell.KeyUp, 0, input.KeyUp},
		{tcell.KeyDown, 0, input.KeyDown},
		{tcell.KeyLeft, 0, input.KeyLeft},
		{tcell.KeyRight, 0, input.KeyRight},
		{tcell.KeyCtrlC, 0, input.KeyInterrupt},
		{tcell.KeyEscape, 0, input.KeyEscape},
		{tcell.KeyRune, 'w', 'w'},
		{tcell.KeyRune, ' ', ' '},
		{tcell.KeyF1, 0, input.KeyNone},
	}

	for _, tt := range tests {
		if got := translateKey(tt.key, tt.r); got != tt.want {
			t.Errorf("translateKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}
