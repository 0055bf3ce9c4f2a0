package loan

import "errors"

var (
	ErrLoanNotFound       = errors.New("loan not found")
	ErrLoanCompleted      = errors.New("loan already completed, cannot delete")
	ErrInvalidCalculation = errors.New("invalid loan calculation method")
)
