package draw

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/midline/internal/input"
)

// cellText is one Put call, kept so Flash can redraw the frame afterwards.
type cellText struct {
	col, row int
	s        string
}

// Tcell is a terminal backed by a tcell screen.
type Tcell struct {
	screen tcell.Screen
	keys   chan input.Key
	done   chan struct{} // closed by Close
	pumped chan struct{} // closed when pump returns
	once   sync.Once
	frame  []cellText
	width  int
	height int

	style      tcell.Style
	flashStyle tcell.Style
	flashDelay time.Duration
}

// NewTcell opens the controlling terminal through tcell.
func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newTcell(screen)
}

func newTcell(screen tcell.Screen) (*Tcell, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	width, height := screen.Size()
	t := &Tcell{
		screen:     screen,
		keys:       make(chan input.Key, 128),
		done:       make(chan struct{}),
		pumped:     make(chan struct{}),
		width:      width,
		height:     height,
		style:      tcell.StyleDefault,
		flashStyle: tcell.StyleDefault.Reverse(true),
		flashDelay: FlashDuration,
	}
	go t.pump()
	return t, nil
}

// pump forwards key events until the screen is finalized. A full key queue
// does not keep it alive past Close.
func (t *Tcell) pump() {
	defer close(t.pumped)
	defer close(t.keys)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		k := translateKey(kev.Key(), kev.Rune())
		if k == input.KeyNone {
			continue
		}
		select {
		case t.keys <- k:
		case <-t.done:
			return
		}
	}
}

// translateKey maps a tcell key to the game's key codes.
func translateKey(key tcell.Key, r rune) input.Key {
	switch key {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyCtrlC:
		return input.KeyInterrupt
	case tcell.KeyRune:
		return input.Key(r)
	}
	return input.KeyNone
}

// Size returns the grid dimensions captured at startup.
func (t *Tcell) Size() (width, height int) {
	return t.width, t.height
}

// Clear starts a new frame.
func (t *Tcell) Clear() {
	t.frame = t.frame[:0]
	t.screen.Clear()
}

// Put writes s with its first cell at (col, row). tcell drops cells that fall
// outside the screen.
func (t *Tcell) Put(col, row int, s string) {
	t.frame = append(t.frame, cellText{col: col, row: row, s: s})
	t.put(col, row, s, t.style)
}

func (t *Tcell) put(col, row int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		t.screen.SetContent(col+i, row, r, nil, style)
		i++
	}
}

// Flush presents the frame.
func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}

// Flash rings the bell and shows the frame in reverse video for a moment.
func (t *Tcell) Flash() error {
	if err := t.screen.Beep(); err != nil {
		return err
	}

	t.screen.Fill(' ', t.flashStyle)
	for _, c := range t.frame {
		t.put(c.col, c.row, c.s, t.flashStyle)
	}
	t.screen.Show()
	time.Sleep(t.flashDelay)

	t.screen.Clear()
	for _, c := range t.frame {
		t.put(c.col, c.row, c.s, t.style)
	}
	t.screen.Show()
	return nil
}

// PollKey returns the next key without blocking.
func (t *Tcell) PollKey() input.Key {
	select {
	case k, ok := <-t.keys:
		if !ok {
			return input.KeyClosed
		}
		return k
	default:
		return input.KeyNone
	}
}

// WaitKey blocks for the next key.
func (t *Tcell) WaitKey() input.Key {
	k, ok := <-t.keys
	if !ok {
		return input.KeyClosed
	}
	return k
}

// Close restores the terminal and waits for the event pump to stop. It is
// safe to call more than once.
func (t *Tcell) Close() error {
	t.once.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
	<-t.pumped
	return nil
}
