package walkerr

import (
	"errors"
	"testing"
	"time"
)

func TestPathErrorUnwraps(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewPathError(3, "/tmp/x", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false, want true")
	}
	if got := err.Error(); got == "" {
		t.Fatalf("Error() returned empty string")
	}
}

func TestLoopErrorMessage(t *testing.T) {
	err := NewLoopError("/tmp/a/loop", "/tmp/a")
	msg := err.Error()
	if msg == "" {
		t.Fatalf("Error() returned empty string")
	}
}

func TestBusyErrorMessage(t *testing.T) {
	err := NewBusyError(2 * time.Second)
	if err.Timeout != 2*time.Second {
		t.Fatalf("got Timeout %v, want 2s", err.Timeout)
	}
	if err.Error() == "" {
		t.Fatalf("Error() returned empty string")
	}
}
