package core

import "errors"

// Error kinds shared by every package of the module. Package-level sentinel
// errors wrap exactly one of these so callers can classify a failure with
// errors.Is without knowing which package produced it.
var (
	// ErrIO reports that a path could not be opened in the requested mode.
	ErrIO = errors.New("io error")
	// ErrFormat reports a short header or truncated/malformed payload.
	ErrFormat = errors.New("format error")
	// ErrAllocation reports that a buffer of the requested size cannot be acquired.
	ErrAllocation = errors.New("allocation error")
	// ErrPrecondition reports a violated caller precondition.
	ErrPrecondition = errors.New("precondition error")
)

// Kind is an error that belongs to one of the taxonomy kinds above.
type Kind struct {
	kind error
	msg  string
}

// NewKind returns a sentinel error with message msg that matches kind under
// errors.Is.
func NewKind(kind error, msg string) error {
	return &Kind{kind: kind, msg: msg}
}

func (e *Kind) Error() string { return e.msg }

// Unwrap exposes the taxonomy kind.
func (e *Kind) Unwrap() error { return e.kind }
