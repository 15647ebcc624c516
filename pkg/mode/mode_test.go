package mode

import (
	"context"
	"errors"
	"testing"
)

type stubConfirmer struct {
	answer bool
	err    error
	calls  int
}

func (s *stubConfirmer) Confirm(ctx context.Context) (bool, error) {
	s.calls++
	return s.answer, s.err
}

func TestResolve(t *testing.T) {
	tests := []struct {
		value string
		want  Mode
	}{
		{"live", Commit},
		{"", Simulate},
		{"dry_run", Simulate},
		{"LIVE", Simulate},
		{" live", Simulate},
		{"live ", Simulate},
	}
	for _, tt := range tests {
		if got := Resolve(tt.value); got != tt.want {
			t.Fatalf("Resolve(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGateSimulateNeverPrompts(t *testing.T) {
	c := &stubConfirmer{answer: false}
	if err := Gate(context.Background(), Simulate, c); err != nil {
		t.Fatalf("Gate in simulate mode returned %v", err)
	}
	if c.calls != 0 {
		t.Fatalf("expected no confirmation prompt in simulate mode, got %d", c.calls)
	}
}

func TestGateCommit(t *testing.T) {
	accept := &stubConfirmer{answer: true}
	if err := Gate(context.Background(), Commit, accept); err != nil {
		t.Fatalf("accepted gate returned %v", err)
	}
	if accept.calls != 1 {
		t.Fatalf("expected one prompt, got %d", accept.calls)
	}

	exit := &stubConfirmer{answer: false}
	if err := Gate(context.Background(), Commit, exit); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	boom := errors.New("stdin closed")
	broken := &stubConfirmer{err: boom}
	if err := Gate(context.Background(), Commit, broken); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped prompt error, got %v", err)
	}
}
