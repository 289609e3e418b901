package tracker

import "errors"

// ErrValidation marks invalid create/update input. Nothing is mutated and
// nothing is persisted when a call fails with it.
var ErrValidation = errors.New("validation failed")
