package registry

import "context"

// Task tracks a background reinitialize started by Submit.
type Task struct {
	done   chan struct{}
	err    error
	shared bool
}

// Done is closed when the build finishes.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Poll reports whether the build finished and, if so, its error.
func (t *Task) Poll() (bool, error) {
	select {
	case <-t.done:
		return true, t.err
	default:
		return false, nil
	}
}

// Wait blocks until the build finishes or ctx is done.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shared reports whether the build was shared with another submission.
// Only meaningful once Done is closed.
func (t *Task) Shared() bool {
	select {
	case <-t.done:
		return t.shared
	default:
		return false
	}
}
