package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies protocol-level failures. The set is closed; anything
// the external driver produces maps to ErrEngineProcessing because its
// failure modes are not enumerable ahead of time.
type ErrorKind string

const (
	// ErrFailedToParseIPCJson indicates a malformed request payload.
	// Recovered at the codec boundary; never reaches the engine.
	ErrFailedToParseIPCJson ErrorKind = "FailedToParseIPCJson"
	// ErrInvalidInstruction indicates an unknown instruction ID.
	ErrInvalidInstruction ErrorKind = "InvalidInstruction"
	// ErrMissingParameter indicates a required parameter was not supplied.
	ErrMissingParameter ErrorKind = "MissingParameter"
	// ErrInvalidParameterType indicates a parameter with the wrong type.
	ErrInvalidParameterType ErrorKind = "InvalidParameterType"
	// ErrUnexpectedParameter indicates a parameter the schema does not declare.
	ErrUnexpectedParameter ErrorKind = "UnexpectedParameter"
	// ErrEngineProcessing covers connect, resolution, capability and leaf
	// operation failures.
	ErrEngineProcessing ErrorKind = "EngineProcessingError"
)

// Error is the typed error surfaced to callers through the protocol.
type Error struct {
	Kind   ErrorKind `json:"kind"`
	Reason string    `json:"reason"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// NewError creates a typed protocol error.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// AsError coerces err into a typed protocol error. Errors that are not
// already typed are classified as EngineProcessingError.
func AsError(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return &Error{Kind: ErrEngineProcessing, Reason: err.Error()}
}

// ErrRunNotFound is returned when a run ID cannot be found in the journal.
var ErrRunNotFound = errors.New("run not found")
