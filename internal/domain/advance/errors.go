package advance

import "errors"

var (
	ErrAdvanceNotFound       = errors.New("advance not found")
	ErrInvalidTransition     = errors.New("illegal advance status transition")
	ErrAdvanceExistsForMonth = errors.New("advance already exists for this employee and month")
)
