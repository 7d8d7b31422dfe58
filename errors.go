package graphname

import "errors"

// ErrTypeMismatch is returned when a non-string value is written to the name.
var ErrTypeMismatch = errors.New("type mismatch")
