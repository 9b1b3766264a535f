package handlers

import "errors"

var (
	errInvalidDecimals = errors.New("decimals must be one of 0, 2, 4, 6, 8 or 9")
	errUnknownFormat   = errors.New("unknown output format")
)
