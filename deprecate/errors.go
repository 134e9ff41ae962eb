package deprecate

import (
	"errors"
	"strconv"
)

var (
	// ErrDeprecated is matched (via errors.Is) by every *DeprecationError.
	ErrDeprecated = errors.New("deprecate: deprecated construct used")

	// ErrInvalidArgument is matched (via errors.Is) by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("deprecate: invalid argument")
)

// DeprecationError is returned (or, for wrappers without an error result,
// panicked) instead of logging when the facility runs in throw-mode.
type DeprecationError struct {
	// Message is the deprecation message that would otherwise have been logged.
	Message string
}

// Error implements the error interface.
func (e *DeprecationError) Error() string {
	// Example: deprecate: 'Dial' is deprecated. Use 'Connect' instead.
	return "deprecate: " + e.Message
}

// Is reports whether target is ErrDeprecated.
func (e *DeprecationError) Is(target error) bool { return target == ErrDeprecated }

// InvalidArgumentError reports a wrapping constructor or configuration call
// that received an argument it cannot work with.
type InvalidArgumentError struct {
	// Op is the operation that rejected the argument (e.g. "RemoveProperty").
	Op string

	// Name is the property, method, or variable the argument refers to.
	Name string

	// Reason is a short human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	// Example: deprecate: RemoveProperty "color": object does not own that property
	msg := "deprecate: " + e.Op
	if e.Name != "" {
		msg += " " + strconv.Quote(e.Name)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func invalidArgument(op, name, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Op: op, Name: name, Reason: reason}
}
