package fiber

import "errors"

// ErrStackTooSmall is returned by New when the stack it is given has fewer
// usable bytes than the minimum a generator needs.
var ErrStackTooSmall = errors.New("fiber: stack too small")

// panicUnwrapLive is the one programmer-error condition at this layer
// that is a panic with a fixed string rather than a returned error
// resuming a terminated generator is not an error at all, it silently
// returns the zero value and false instead.
const panicUnwrapLive = "fiber: Unwrap called on a generator that is still live"
