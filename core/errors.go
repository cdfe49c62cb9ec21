package core

import "errors"

// Error categories shared by every package in this module. Packages wrap
// them with context, so callers classify failures with errors.Is.
var (
	ErrDomain            = errors.New("core: value outside mathematical domain")
	ErrShapeMismatch     = errors.New("core: array shapes do not match")
	ErrDivisionByZero    = errors.New("core: division by zero")
	ErrMissingWeight     = errors.New("core: neither sigma nor weights supplied")
	ErrConflictingWeight = errors.New("core: both sigma and weights supplied")
	ErrUnsupportedUnit   = errors.New("core: unsupported unit")
	ErrEmptyInput        = errors.New("core: empty input")
	ErrInvalidAxis       = errors.New("core: axis out of range")
)
