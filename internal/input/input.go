// Package input turns raw terminal bytes into key codes.
package input

import (
	"bufio"
	"time"
)

// EscapeDelay is how long a lone ESC, or ESC [, waits for the rest of an
// arrow sequence before it is delivered as KeyEscape.
const EscapeDelay = 50 * time.Millisecond

// Key is a single key press. Printable keys are their rune value; special
// keys use negative codes.
type Key rune

// Special keys.
const (
	KeyNone   Key = -1 // nothing pending
	KeyUp     Key = -2
	KeyDown   Key = -3
	KeyLeft   Key = -4
	KeyRight  Key = -5
	KeyClosed Key = -6 // input source is gone

	KeyInterrupt Key = 0x03 // Ctrl-C in raw mode
	KeyEscape    Key = 0x1b
)

// String returns a readable name for logs.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyClosed:
		return "closed"
	case KeyInterrupt:
		return "ctrl-c"
	case KeyEscape:
		return "esc"
	case ' ':
		return "space"
	}
	return string(rune(k))
}

// Stream delivers input bytes via a channel and decodes them one key at a time.
type Stream struct {
	ch      chan byte
	pending []byte
	closed  bool

	escDelay  time.Duration
	partialAt time.Time // when the held-back sequence started; zero if none
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:       make(chan byte, 128),
		escDelay: EscapeDelay,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll returns the next pending key without blocking, or KeyNone.
// Keys typed faster than they are polled queue up and come out one per call.
// An arrow sequence split across reads is held back until it is complete,
// or until EscapeDelay passes and the ESC is taken as a key of its own.
func (s *Stream) Poll() Key {
	s.drain()
	if len(s.pending) == 0 {
		if s.closed {
			return KeyClosed
		}
		return KeyNone
	}
	if !s.closed && partialCSI(s.pending) {
		if s.partialAt.IsZero() {
			s.partialAt = time.Now()
		}
		if time.Since(s.partialAt) < s.escDelay {
			return KeyNone
		}
	}
	return s.next()
}

// Wait blocks until a key arrives or the source closes.
func (s *Stream) Wait() Key {
	for {
		if k := s.Poll(); k != KeyNone {
			return k
		}
		if s.partialAt.IsZero() {
			b, ok := <-s.ch
			s.receive(b, ok)
			continue
		}

		// Part of an arrow sequence is held back: wake up when it expires.
		timer := time.NewTimer(s.escDelay - time.Since(s.partialAt))
		select {
		case b, ok := <-s.ch:
			s.receive(b, ok)
		case <-timer.C:
		}
		timer.Stop()
	}
}

// receive stores one value read from the byte channel.
func (s *Stream) receive(b byte, ok bool) {
	if !ok {
		s.closed = true
		return
	}
	s.pending = append(s.pending, b)
}

// drain moves every byte already available on the channel into pending.
func (s *Stream) drain() {
	if s.closed {
		return
	}
	for {
		select {
		case b, ok := <-s.ch:
			s.receive(b, ok)
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// next decodes one key from the front of pending.
func (s *Stream) next() Key {
	k, n := Decode(s.pending)
	s.pending = s.pending[n:]
	s.partialAt = time.Time{}
	return k
}

// partialCSI reports whether buf is the start of an arrow sequence.
func partialCSI(buf []byte) bool {
	switch len(buf) {
	case 1:
		return buf[0] == '\x1b'
	case 2:
		return buf[0] == '\x1b' && buf[1] == '['
	}
	return false
}

// Decode reads one key from the start of buf and returns it with the number
// of bytes consumed. Arrow keys arrive as the CSI sequences ESC [ A..D.
func Decode(buf []byte) (Key, int) {
	if len(buf) == 0 {
		return KeyNone, 0
	}

	b := buf[0]
	if b == '\x1b' && len(buf) > 2 && buf[1] == '[' {
		switch buf[2] {
		case 'A':
			return KeyUp, 3
		case 'B':
			return KeyDown, 3
		case 'C':
			return KeyRight, 3
		case 'D':
			return KeyLeft, 3
		}
	}

	return Key(b), 1
}
