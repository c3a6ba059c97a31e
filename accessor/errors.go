package accessor

import "errors"

var (
	// ErrUnknownHostVersion indicates no table entry covers the host version.
	ErrUnknownHostVersion = errors.New("unknown host version")

	// ErrInvalidTable indicates a malformed descriptor table.
	ErrInvalidTable = errors.New("invalid descriptor table")
)
