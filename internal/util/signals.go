package util

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler creates a context that is cancelled on receiving SIGINT or SIGTERM.
// A second signal will force immediate exit.
func SetupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	// Create channel to receive OS signals
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("received shutdown signal", "signal", sig.String())
		cancel()

		// Second signal forces immediate exit
		sig = <-sigCh
		slog.Warn("received second shutdown signal, forcing exit", "signal", sig.String())
		os.Exit(1)
	}()

	return ctx
}

// CancelOnLine blocks until a line of input arrives on r, then cancels.
// A bare EOF with no preceding input returns without cancelling: closing
// stdin is not a cancellation request, typing Enter is.
func CancelOnLine(r io.Reader, cancel context.CancelFunc) {
	reader := bufio.NewReader(r)

	line, err := reader.ReadString('\n')
	if len(line) == 0 {
		if err != nil && err != io.EOF {
			slog.Debug("stdin watcher stopped", "error", err)
		}
		return
	}

	slog.Info("cancellation requested via stdin")
	cancel()
}
