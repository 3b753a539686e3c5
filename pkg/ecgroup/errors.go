package ecgroup

import "errors"

// Common errors returned by the group constructors.
var (
	ErrUnknownCurve  = errors.New("ecgroup: unknown curve name")
	ErrMissingParams = errors.New("ecgroup: curve parameters are incomplete")
)
