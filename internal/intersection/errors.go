package intersection

import "errors"

// ErrInvalidArgument is returned for inputs the core cannot work with.
// It is always detected before any timed work begins.
var ErrInvalidArgument = errors.New("invalid argument")
