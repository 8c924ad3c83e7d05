package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/midline/internal/loop"
)

// sessionConn stands in for an ssh channel: scripted input, recorded output.
type sessionConn struct {
	io.Reader
	out bytes.Buffer
}

func (c *sessionConn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func TestPlaySessionRestoresTerminal(t *testing.T) {
	const showCursor = "\033[?25h"

	tests := []struct {
		name          string
		width, height int
		wantErr       error
	}{
		{"quit", 40, 12, nil},
		{"too small", loop.MinWidth - 1, 12, loop.ErrTerminalTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &sessionConn{Reader: strings.NewReader("q")}

			res, err := playSession(conn, tt.width, tt.height, log.New(io.Discard))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !res.Quit {
				t.Errorf("result = %+v, want quit", res)
			}
			if !strings.HasSuffix(conn.out.String(), showCursor) {
				t.Errorf("session output does not end by restoring the cursor: %q",
					tail(conn.out.String(), 32))
			}
		})
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
