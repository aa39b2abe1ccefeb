package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned when the user dismisses a file dialog.
	ErrCancelled = errors.New("cancelled by user")
	// ErrConfirmationDeclined is returned when the user refuses to discard unsaved changes.
	ErrConfirmationDeclined = errors.New("unsaved changes kept")
	// ErrBusy is returned when a command is fired while another one is still pending.
	ErrBusy = errors.New("another command is in progress")
)

// IOError wraps a failed read, write or dialog interaction.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError builds an IOError, returning nil for a nil err.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// IsSilent reports whether err is an outcome the user caused and needs no notification.
func IsSilent(err error) bool {
	return errors.Is(err, ErrCancelled) ||
		errors.Is(err, ErrConfirmationDeclined) ||
		errors.Is(err, ErrBusy)
}
