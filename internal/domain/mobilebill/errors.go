package mobilebill

import "errors"

var (
	ErrBillNotFound        = errors.New("mobile bill not found")
	ErrBillAlreadyDeducted = errors.New("mobile bill already deducted")
)
