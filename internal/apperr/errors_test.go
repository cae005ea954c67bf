package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	err := New(CodeNotFound, "material %s not found", "m1")
	if err.Error() != "material m1 not found" {
		t.Errorf("message = %q", err.Error())
	}
	if CodeOf(err) != CodeNotFound {
		t.Errorf("code = %q", CodeOf(err))
	}

	// The code survives wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("loading progress: %w", err)
	if !IsCode(wrapped, CodeNotFound) {
		t.Error("code lost through fmt.Errorf wrapping")
	}

	if CodeOf(errors.New("plain")) != "" {
		t.Error("plain error should have no code")
	}
	if CodeOf(nil) != "" {
		t.Error("nil error should have no code")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, CodeConflict, "saving progress")

	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	if err.Error() != "saving progress: connection reset" {
		t.Errorf("message = %q", err.Error())
	}
	if CodeOf(err) != CodeConflict {
		t.Errorf("code = %q", CodeOf(err))
	}
}
