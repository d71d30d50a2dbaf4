package session

import (
	"context"
	"errors"
)

// ErrSessionClosed is returned when a command is submitted to a session whose
// Run loop has stopped.
var ErrSessionClosed = errors.New("session is closed")

// command is a unit of work executed inside the Run loop, serialized with the
// refresh and sweep ticks.
type command struct {
	fn   func(ctx context.Context) error
	done chan error
}

// Apply runs fn inside the session's event loop and waits for it to finish.
// Mutations applied this way are followed by a forced refresh so the snapshot
// reflects them before Apply returns.
func (s *Session) Apply(ctx context.Context, fn func(ctx context.Context) error) error {
	wrapped := func(runCtx context.Context) error {
		if err := fn(runCtx); err != nil {
			return err
		}
		return s.Refresh(runCtx)
	}

	cmd := command{fn: wrapped, done: make(chan error, 1)}
	select {
	case s.commands <- cmd:
	case <-s.closed:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
