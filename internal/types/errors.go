package types

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration covers invalid input detected before any mutation.
	ErrConfiguration = errors.New("configuration error")
	// ErrConstraintViolation is returned when an MTU cascade would lower a required MTU.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrOperation wraps every failure reported by the operating system.
	ErrOperation = errors.New("operation failed")
)

// OperationError is a failed kernel or OVS operation. It is fatal and never retried.
type OperationError struct {
	Op        string
	Interface string
	Err       error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Interface, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrOperation) hold for every OperationError.
func (e *OperationError) Is(target error) bool {
	return target == ErrOperation
}

// Configurationf builds an ErrConfiguration with context.
func Configurationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// ConstraintViolationf builds an ErrConstraintViolation with context.
func ConstraintViolationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstraintViolation, fmt.Sprintf(format, args...))
}
