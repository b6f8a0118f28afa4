package codespace

import "errors"

// ErrInvalidInput is returned when a caller hands a row text that contains
// a line break. Nothing is mutated in that case.
var ErrInvalidInput = errors.New("codespace: invalid input")
