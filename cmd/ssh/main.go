package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/midline/internal/config"
	"github.com/tomz197/midline/internal/draw"
	"github.com/tomz197/midline/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"

	shutdownTimeout = 5 * time.Second
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "midline-ssh",
		ReportTimestamp: true,
	})

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(logger),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Arrow keys arrive as several small writes.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware plays one independent game per session on the session's pty.
func gameMiddleware(logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sl := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			sl.Info("new game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			// The grid is fixed for the session; resizes are only logged.
			go func() {
				for win := range winCh {
					sl.Debug("window changed", "width", win.Width, "height", win.Height)
				}
			}()

			res, err := playSession(sess, pty.Window.Width, pty.Window.Height, sl)
			switch {
			case errors.Is(err, loop.ErrTerminalTooSmall):
				fmt.Fprintf(sess, "Terminal too small: need at least %dx%d.\r\n", loop.MinWidth, loop.MinHeight)
			case err != nil:
				sl.Error("game error", "err", err)
			}

			sl.Info("session ended", "score", res.Score, "difficulty", res.Difficulty, "quit", res.Quit)
			next(sess)
		}
	}
}

// playSession runs one game on the session channel and always clears the
// screen and restores the cursor before returning.
func playSession(rw io.ReadWriter, width, height int, logger *log.Logger) (loop.Result, error) {
	screen, err := draw.NewANSI(bufio.NewReader(rw), rw, draw.FixedSize(width, height))
	if err != nil {
		return loop.Result{}, fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		_ = screen.Close()
	}()

	return loop.Run(screen, loop.Options{Logger: logger})
}
