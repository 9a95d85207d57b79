package workflow

import "errors"

// Errors returned by this package wrap exactly one of these sentinels.
// Use errors.Is to classify them.
var (
	// ErrConfiguration reports a channel whose environment variable is unset or empty.
	ErrConfiguration = errors.New("configuration error")
	// ErrIO reports a failure to open, write or close a channel file.
	ErrIO = errors.New("i/o error")
	// ErrValidation reports a key, value or path that cannot be written safely.
	ErrValidation = errors.New("validation error")
	// ErrArgument reports a call shape that matches no supported form.
	ErrArgument = errors.New("argument error")
)
