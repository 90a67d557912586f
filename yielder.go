package fiber

import (
	"github.com/corostack/fiber/internal/fiberctx"
	"github.com/corostack/fiber/internal/valuepass"
)

// Yielder is the handle a generator's body uses to hand a value back to
// its caller and receive the next input. It must never be retained past
// the return of the entry function it was created for: nothing prevents
// a caller from doing so at compile time, but any use afterward operates
// on a Context that is no longer owned by a live call frame.
type Yielder[I, O any] struct {
	ctx *fiberctx.Context
}

// Suspend hands o back to whoever is waiting on the matching Resume call,
// blocks until the generator is resumed again, and returns the value that
// resume sent.
//
// Suspend panics if called while a forced Close is unwinding the
// generator's own stack (e.g. from a deferred cleanup that Close
// triggered), to stop a destructor from smuggling control back to a
// caller no longer prepared to receive it. Unwinding caused by an
// ordinary panic in the body is not detected: a Suspend call from a
// deferred function during such a panic switches back to the caller as
// usual.
func (y *Yielder[I, O]) Suspend(o O) I {
	in := y.ctx.Suspend(valuepass.Pack(&o))
	return valuepass.Unpack[I](in)
}
