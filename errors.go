package algosparse

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBackend is returned when no backend is registered.
	ErrNoBackend = errors.New("algosparse: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// usable on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("algosparse: backend unavailable")

	// ErrNotImplemented is returned by stubbed operations.
	ErrNotImplemented = errors.New("algosparse: not implemented")

	// ErrClosedHandle is returned when an operation is dispatched through a
	// handle that has been closed.
	ErrClosedHandle = errors.New("algosparse: handle closed")
)

// LibraryError reports a non-success status from a native sparse routine.
// It carries the literal call text, the raw status code, and its decoded
// label, so a caller can log and diagnose without this layer's internals.
type LibraryError struct {
	Call   string
	Status Status
}

func (e *LibraryError) Error() string {
	return fmt.Sprintf("algosparse: error encountered at: call='%s', reason=%d:%s",
		e.Call, int32(e.Status), e.Status)
}

// Check translates a native status into an error. It returns nil for
// StatusSuccess and a *LibraryError for anything else. Every native call's
// result passes through here so that failures carry a uniform diagnostic
// format; callers should not inspect raw status codes directly.
func Check(call string, status Status) error {
	if status == StatusSuccess {
		return nil
	}
	return &LibraryError{Call: call, Status: status}
}
