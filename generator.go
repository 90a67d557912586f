package fiber

import (
	"runtime"

	"github.com/corostack/fiber/internal/arch"
	"github.com/corostack/fiber/internal/debughook"
	"github.com/corostack/fiber/internal/fiberctx"
	"github.com/corostack/fiber/internal/valuepass"
)

// State is a Generator's coarse-grained resumability.
type State int

const (
	// Runnable is the initial state, and the state after every Resume
	// that returns a value.
	Runnable State = iota
	// Unavailable is the state once the entry function has returned or
	// panicked: the generator can no longer be resumed.
	Unavailable
)

// minUsableStackBytes is the smallest stack this package will Init: below
// this there isn't room for the resume header plus a realistic function
// prologue.
const minUsableStackBytes = 256

// Generator wraps a function running on its own stack, letting the
// caller drive it with repeated calls to Resume: each call sends the
// function (or the Yielder.Suspend call it is parked on) a value of type
// I, and receives either the value it suspended with (type O) or nothing,
// once it has returned.
type Generator[I, O any] struct {
	state   State
	stack   Stack
	ctx     *fiberctx.Context
	stackID debughook.StackID
}

// Func is the body a Generator runs. It receives the Yielder it should
// use to suspend, and the first input value (the argument of the first
// Resume call).
type Func[I, O any] func(y *Yielder[I, O], first I)

// New creates a generator that will run f on stack. f does not begin
// running until the first call to Resume.
func New[I, O any](stack Stack, f Func[I, O]) (*Generator[I, O], error) {
	if size(stack) < minUsableStackBytes {
		return nil, ErrStackTooSmall
	}

	g := &Generator[I, O]{state: Runnable, stack: stack}
	g.stackID = debughook.Register(stack.Base(), stack.Limit())
	g.ctx = fiberctx.New(stack.Base(), stack.Limit(), func(ctx *fiberctx.Context, arg uintptr) uintptr {
		y := &Yielder[I, O]{ctx: ctx}
		first := valuepass.Unpack[I](arg)
		f(y, first)
		return 0 // discarded: goEntry parks the context once entry returns, regardless of this value
	})
	return g, nil
}

// State reports whether the generator can still be resumed.
func (g *Generator[I, O]) State() State { return g.state }

// Resume switches into the generator's body (or starts it, on the first
// call), sending it i. It returns the value the body suspended with, and
// true, or the zero value and false if the body has returned.
//
// If the body panics, Resume re-panics with the same value in the
// caller's goroutine, exactly as if the body had run inline.
func (g *Generator[I, O]) Resume(i I) (O, bool) {
	var zero O
	if g.state == Unavailable {
		return zero, false
	}
	g.state = Unavailable // poisoned against reentrant/nested resume while running

	out := g.ctx.Resume(valuepass.Pack(&i))

	if g.ctx.Done() {
		if p := g.ctx.Panic(); p != nil {
			panic(p)
		}
		return zero, false
	}
	g.state = Runnable
	return valuepass.Unpack[O](out), true
}

// Unwrap reclaims the stack once the generator has terminated. It panics
// if the generator is still live; use Close to force termination, or
// UnwrapNoDrop to reclaim the stack without terminating the body.
func (g *Generator[I, O]) Unwrap() Stack {
	if g.state != Unavailable || !g.ctx.Done() {
		panic(panicUnwrapLive)
	}
	debughook.Deregister(g.stackID)
	return g.stack
}

// UnwrapNoDrop reclaims the stack unconditionally, without checking that
// the generator has terminated and without running any unwind. It is
// unsafe: if the body is still suspended mid-execution, its locals are
// abandoned without their destructors running, and the stack memory is
// handed back to the caller while, conceptually, still "in use" by a
// context that will never resume. Only safe to call once nothing else
// holds a reference to the generator.
func (g *Generator[I, O]) UnwrapNoDrop() Stack {
	debughook.Deregister(g.stackID)
	return g.stack
}

// Close terminates a still-live generator, forcing its body to unwind
// through its own deferred cleanup (so destructor-style state is torn
// down), then reclaims the stack. On architectures or platforms without
// cross-stack unwind support (Windows, on every architecture,
// conservatively falls into this category alongside ports where
// SupportsUnwind is false), the
// stack is leaked instead: the body's defers never run, but nothing is
// corrupted.
func (g *Generator[I, O]) Close() Stack {
	if g.state == Unavailable && g.ctx.Done() {
		debughook.Deregister(g.stackID)
		return g.stack
	}
	if !arch.SupportsUnwind || runtime.GOOS == "windows" {
		return g.stack // leaked: body's stack is abandoned, still suspended
	}
	g.ctx.ForceUnwind()
	g.state = Unavailable
	debughook.Deregister(g.stackID)
	return g.stack
}
