package casefile

import "errors"

// Sentinel errors for case file operations.
var (
	// ErrUnsupportedFormat is returned when a file extension has no decoder.
	ErrUnsupportedFormat = errors.New("unsupported case file format")

	// ErrNoCases is returned when a suite lists no cases.
	ErrNoCases = errors.New("suite has no cases")

	// ErrInvalidSuite is returned when a suite fails validation.
	ErrInvalidSuite = errors.New("invalid suite")
)
