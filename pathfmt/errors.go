package pathfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required argument is missing or unusable
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when a numeric argument is below its allowed minimum
	ErrOutOfRange = errors.New("argument out of range")
)

// ArgumentError describes a rejected argument by parameter name
type ArgumentError struct {
	// Param is the name of the offending parameter
	Param string
	// Reason is a short human readable constraint, e.g. "must be at least 6"
	Reason string
	// Value is the rejected value, nil when the argument was absent
	Value any
	// Err is ErrInvalidArgument or ErrOutOfRange
	Err error
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %v: %s", e.Param, e.Err, e.Reason)
	}
	return fmt.Sprintf("%s: %v: %s, got %v", e.Param, e.Err, e.Reason, e.Value)
}

// Unwrap returns the error kind
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func invalidArgument(param, reason string, value any) error {
	return &ArgumentError{Param: param, Reason: reason, Value: value, Err: ErrInvalidArgument}
}

func outOfRange(param, reason string, value any) error {
	return &ArgumentError{Param: param, Reason: reason, Value: value, Err: ErrOutOfRange}
}
