package prompt

import "errors"

// Validation errors for the Configure form.
var (
	errNameRequired   = errors.New("token name is required")
	errSymbolRequired = errors.New("symbol is required")
	errSupplyRequired = errors.New("supply must be a whole number above zero")
)
