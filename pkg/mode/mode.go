// Package mode resolves whether a run only previews its actions or commits
// them to the remote channels.
package mode

import (
	"context"
	"errors"
	"fmt"
)

// LiveValue is the only configuration value that enables Commit.
const LiveValue = "live"

// Mode is chosen once per run and never changes afterwards.
type Mode int

const (
	// Simulate computes and reports every action without calling a mutating endpoint.
	Simulate Mode = iota
	// Commit performs removals, title writes and invite regeneration for real.
	Commit
)

// ErrAborted is returned when the operator types the exit token at the live-mode gate.
var ErrAborted = errors.New("run aborted by operator")

func (m Mode) String() string {
	switch m {
	case Simulate:
		return "simulate"
	case Commit:
		return "commit"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// IsCommit reports whether mutating calls should reach the remote API.
func (m Mode) IsCommit() bool { return m == Commit }

// Resolve maps the configured mode value to a Mode. Anything but the exact
// string "live" (including an empty or missing value) selects Simulate.
func Resolve(value string) Mode {
	if value == LiveValue {
		return Commit
	}
	return Simulate
}

// Confirmer asks the operator to acknowledge a destructive run.
// It returns false when the operator chose to quit.
type Confirmer interface {
	Confirm(ctx context.Context) (bool, error)
}

// Gate blocks a Commit run until the operator acknowledges it. Simulate runs
// pass straight through without prompting.
func Gate(ctx context.Context, m Mode, c Confirmer) error {
	if !m.IsCommit() {
		return nil
	}
	ok, err := c.Confirm(ctx)
	if err != nil {
		return fmt.Errorf("live mode confirmation: %w", err)
	}
	if !ok {
		return ErrAborted
	}
	return nil
}
