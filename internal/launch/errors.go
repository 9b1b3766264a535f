package launch

import "errors"

// ErrUnknownField is returned when a field name does not match any draft field.
var ErrUnknownField = errors.New("unknown draft field")
