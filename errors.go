package archstudio

import (
	"errors"
	"fmt"
)

// Sentinel errors for common studio error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrScenarioNotFound indicates the requested attack scenario does
	// not exist in the catalog.
	ErrScenarioNotFound = errors.New("attack scenario not found")

	// ErrBriefNotFound indicates the requested engagement brief is not
	// known to the studio.
	ErrBriefNotFound = errors.New("engagement brief not found")

	// ErrNilDesign indicates a nil design was passed to an evaluation.
	ErrNilDesign = errors.New("design must not be nil")
)

// Error kinds categorize errors by their type.
const (
	// KindValidation represents errors caused by invalid caller input,
	// such as a rejected design mutation.
	KindValidation = "validation"

	// KindUnknownReference represents a catalog reference error raised
	// by the attack simulator.
	KindUnknownReference = "unknown_reference"

	// KindNotFound represents errors where a resource was not found.
	KindNotFound = "not_found"

	// KindStorage represents session storage failures.
	KindStorage = "storage"

	// KindInternal represents internal engine errors.
	KindInternal = "internal"
)

// Error is a structured error type that wraps underlying errors with the
// operation that failed and the category of error.
//
// Error implements the error interface and supports unwrapping, making it
// compatible with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g. "Studio.Simulate").
	Op string

	// Kind categorizes the error (e.g. KindNotFound, KindValidation).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional debugging information (optional).
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("archstudio: %s: %s", e.Op, e.Kind)
	}
	if len(e.Context) > 0 {
		return fmt.Sprintf("archstudio: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}
	return fmt.Sprintf("archstudio: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison on Kind (and
// optionally Op) when the target is itself an *Error, and delegating to the
// wrapped error otherwise.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the provided context merged
// in.
func (e *Error) WithContext(ctx map[string]any) *Error {
	merged := make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &Error{Op: e.Op, Kind: e.Kind, Err: e.Err, Context: merged}
}
