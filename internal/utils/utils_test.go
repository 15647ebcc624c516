package utils

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseChannelIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{"single", "-1001234567890", []int64{-1001234567890}, false},
		{"order preserved", "-1003 -1001\n-1002", []int64{-1003, -1001, -1002}, false},
		{"extra whitespace", "  42\t\t7  ", []int64{42, 7}, false},
		{"empty", "   ", nil, true},
		{"not a number", "-100 @mychannel", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChannelIDs(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseChannelIDs(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseChannelIDs(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRunLockRefusesSecondHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "run.lock")

	first, err := NewRunLock(path)
	if err != nil {
		t.Fatalf("NewRunLock: %v", err)
	}
	if err := first.Lock(); err != nil {
		t.Fatalf("first Lock: %v", err)
	}

	second, err := NewRunLock(path)
	if err != nil {
		t.Fatalf("NewRunLock: %v", err)
	}
	if err := second.Lock(); !errors.Is(err, ErrRunInProgress) {
		t.Fatalf("expected ErrRunInProgress, got %v", err)
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := second.Lock(); err != nil {
		t.Fatalf("Lock after release: %v", err)
	}
	_ = second.Unlock()
}
