package ferry

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupported is carried by every error Encode and Decode return.
	ErrUnsupported = errors.New("operation not supported")

	// ErrTypeNotFound indicates the host lacks a type the probe needs.
	ErrTypeNotFound = errors.New("internal type not found")

	// ErrFieldUnreadable indicates the adapter field exists but cannot be read.
	ErrFieldUnreadable = errors.New("adapter field unreadable")

	// ErrAdapterNil indicates the adapter field holds no value.
	ErrAdapterNil = errors.New("adapter field is nil")

	// ErrAdapterShape indicates the adapter value has no usable JSON methods.
	ErrAdapterShape = errors.New("adapter has no json methods")

	// ErrNoStrategy indicates neither conversion strategy resolved.
	ErrNoStrategy = errors.New("no conversion strategy found")

	// ErrProbePanic indicates probing panicked.
	ErrProbePanic = errors.New("probe panicked")

	// ErrNotProbed indicates a serializer that was never probed.
	ErrNotProbed = errors.New("serializer not probed")

	// ErrConversion indicates a supported conversion failed at runtime.
	ErrConversion = errors.New("conversion failed")

	// ErrNilHandle indicates a nil native handle going in or coming out.
	ErrNilHandle = errors.New("nil native handle")

	// ErrTextResult indicates a host conversion that did not produce text.
	ErrTextResult = errors.New("host returned non-text json")
)

// InitError records why probing failed. It is never returned on its own;
// Encode and Decode wrap it in an UnsupportedError.
type InitError struct {
	Step  string // Probe step that failed (e.g. "component type")
	Err   error  // Underlying sentinel error (ErrTypeNotFound, etc.)
	Cause error  // Original error, if any
}

func (e *InitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Step, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Step, e.Err.Error())
}

func (e *InitError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// ConversionError records a runtime fault in a supported conversion.
type ConversionError struct {
	Strategy Strategy // Strategy that was converting
	Stage    string   // Stage that failed (e.g. "adapter", "component json")
	Cause    error    // Original error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Strategy, e.Stage, e.Cause)
}

func (e *ConversionError) Unwrap() []error {
	return []error{ErrConversion, e.Cause}
}

// UnsupportedError is the only error kind Encode and Decode return.
// Cause is an *InitError when the host was never supported, or a
// *ConversionError when this call failed.
type UnsupportedError struct {
	Op    string // "encode" or "decode"
	Cause error
}

func (e *UnsupportedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, ErrUnsupported.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, ErrUnsupported.Error())
}

func (e *UnsupportedError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrUnsupported, e.Cause}
	}
	return []error{ErrUnsupported}
}

// newInitError creates an InitError for a failed probe step.
func newInitError(step string, sentinel, cause error) error {
	return &InitError{
		Step:  step,
		Err:   sentinel,
		Cause: cause,
	}
}

// newConversionError creates a ConversionError for a failed conversion stage.
func newConversionError(strategy Strategy, stage string, cause error) error {
	return &ConversionError{
		Strategy: strategy,
		Stage:    stage,
		Cause:    cause,
	}
}
