package lookup

import "errors"

var (
	// ErrInvocation indicates a host function panicked or returned an error.
	ErrInvocation = errors.New("invocation fault")

	// ErrArgument indicates arguments that do not fit a function's parameters.
	ErrArgument = errors.New("argument mismatch")

	// ErrNotFunction indicates a value that cannot be bound as a function.
	ErrNotFunction = errors.New("not a function")

	// ErrUnreadable indicates a field whose value cannot be read.
	ErrUnreadable = errors.New("field unreadable")

	// ErrInvalidClass indicates a class binding without a name or type.
	ErrInvalidClass = errors.New("invalid class")

	// ErrInvalidStatics indicates statics that are not a pointer to a struct.
	ErrInvalidStatics = errors.New("statics must be a pointer to a struct")

	// ErrDuplicateClass indicates a class name or type defined twice.
	ErrDuplicateClass = errors.New("duplicate class")

	// ErrUnknownClass indicates a type with no class binding.
	ErrUnknownClass = errors.New("unknown class")
)
