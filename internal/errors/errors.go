// Package errors provides the error types shared across malsum.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNoAPIKey blocks every provider path until a key is saved.
	ErrNoAPIKey = errors.New("API key not configured")

	// ErrEmptyInput marks a blank submission; callers treat it as a no-op.
	ErrEmptyInput = errors.New("input is empty")

	// ErrNoPassage is returned when an operation needs a loaded passage.
	ErrNoPassage = errors.New("no passage loaded")

	// ErrBusy guards against duplicate concurrent generation of one category.
	ErrBusy = errors.New("request already in flight")

	// ErrNoContent is the named failure for a response without text.
	ErrNoContent = errors.New("no content in response")

	// ErrReadOnly rejects mutations while viewing a shared study.
	ErrReadOnly = errors.New("session is read-only")
)

// GenerationError wraps a provider failure with the operation that failed,
// so the UI can show the matching user-facing notice.
type GenerationError struct {
	Op      string // "lookup", "meditation", "chat", "summary"
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is matches any GenerationError for the same operation.
func (e *GenerationError) Is(target error) bool {
	other, ok := target.(*GenerationError)
	if !ok {
		return false
	}
	return other.Op == "" || other.Op == e.Op
}

// NewGenerationError creates a GenerationError.
func NewGenerationError(op, message string, err error) *GenerationError {
	return &GenerationError{Op: op, Message: message, Err: err}
}

// ShareDecodeError reports a malformed share token. Decoding failures are
// logged and ignored; the application proceeds in normal mode.
type ShareDecodeError struct {
	Reason string
	Err    error
}

func (e *ShareDecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid share token: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid share token: %s", e.Reason)
}

func (e *ShareDecodeError) Unwrap() error {
	return e.Err
}

// IsGenerationError reports whether err is a GenerationError for op.
// An empty op matches any operation.
func IsGenerationError(err error, op string) bool {
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		return false
	}
	return op == "" || genErr.Op == op
}

// IsShareDecodeError reports whether err is a ShareDecodeError.
func IsShareDecodeError(err error) bool {
	var decErr *ShareDecodeError
	return errors.As(err, &decErr)
}
