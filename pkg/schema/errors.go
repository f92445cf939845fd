package schema

import "fmt"

// ViolationClass distinguishes the ways a value can fail validation. The
// protocol maps each class to a different error kind.
type ViolationClass int

const (
	// ViolationMissing means a declared field was not supplied.
	ViolationMissing ViolationClass = iota
	// ViolationWrongType means a supplied value has the wrong type.
	ViolationWrongType
	// ViolationUnexpected means a supplied field is not declared.
	ViolationUnexpected
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Key    string         // Field ID
	Class  ViolationClass // What went wrong
	Reason string         // Human-readable detail
	Value  any            // The offending value, if any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", e.Key, e.Reason, e.Value)
}
