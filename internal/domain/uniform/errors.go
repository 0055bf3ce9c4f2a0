package uniform

import "errors"

var (
	ErrIssuanceNotFound = errors.New("uniform issuance not found")
)
