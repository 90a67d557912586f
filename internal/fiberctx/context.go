package fiberctx

import (
	"unsafe"

	"github.com/corostack/fiber/internal/arch"
)

// Entry is the function a Context runs on its private stack. It receives
// the Context itself (so it can call Suspend) and the argument carried by
// the switch that first resumed it.
type Entry func(ctx *Context, arg uintptr) uintptr

// Context is a single suspended/running pair: the owner resumes it with
// Resume, the body suspends it with Suspend, and both sides address the
// same underlying switch cell (sp). sp must remain the first field: goEntry
// recovers the enclosing *Context from the raw *uintptr the assembly
// trampoline hands it by pointer arithmetic back to field zero.
type Context struct {
	sp   uintptr
	base uintptr

	entry Entry

	done      bool
	panicVal  any
	unwinding bool
}

const unwindSignal = ^uintptr(0) // sentinel arg recognized by Suspend as "stop; unwind"

// New prepares a Context whose body will run entry on the stack spanning
// [limit, base). New writes only the initial resume frame (arch.Init)
// near base; entry does not run until the first Resume.
func New(base, limit uintptr, entry Entry) *Context {
	return &Context{
		sp:    arch.Init(base),
		base:  base,
		entry: entry,
	}
}

// Done reports whether the body has returned or finished unwinding; a
// Context in this state can never be resumed again.
func (c *Context) Done() bool { return c.done }

// Panic returns the recovered panic value left by the last Resume that
// observed the body panicking, or nil if none did.
func (c *Context) Panic() any { return c.panicVal }

// Resume is called by the context's owner. It switches onto the body's
// stack carrying arg, and returns once the body suspends (via Suspend) or
// terminates. The caller must check Done/Panic after it returns: a
// terminated or panicked Context must not be resumed again.
//
// Resume uses the parent-frame-link variant of the switch: the owner is
// always the "owning thread" of this Context, so the outgoing stack
// pointer is recorded below the body's stack base for frame-pointer
// walkers that cross from the body's stack back here.
func (c *Context) Resume(arg uintptr) uintptr {
	if c.done {
		panic("fiberctx: Resume called on a terminated Context")
	}
	return arch.SwapLink(arg, &c.sp, c.base)
}

// Suspend is called from inside the running body (directly, or from Entry
// itself on first entry) to hand a value back to whoever last called
// Resume, and to block until the next Resume. It uses the plain switch:
// the body is never the owning thread of its own resumer.
func (c *Context) Suspend(val uintptr) uintptr {
	if c.unwinding {
		panic("fiberctx: Suspend called while unwinding")
	}
	in := arch.Swap(val, &c.sp)
	if in == unwindSignal {
		c.unwinding = true
		panic(forcedUnwind{})
	}
	return in
}

// ForceUnwind resumes a suspended body one final time with a sentinel that
// its next Suspend call recognizes as "stop here": the body unwinds its
// own defers (running any destructors) instead of receiving a value, and
// goEntry's recover turns that into Done()==true, Panic()==nil. It must
// only be called while the Context is suspended (not terminated), and
// only on architectures where SupportsUnwind is true.
func (c *Context) ForceUnwind() {
	c.Resume(unwindSignal)
}

// forcedUnwind is the sentinel panic value used to drive ForceUnwind. It
// is never exposed through Panic(): goEntry's recover distinguishes it
// from a real panic raised by the entry function.
type forcedUnwind struct{}

// goEntry is the landing function every freshly Init'ed stack's first
// switch ends up calling, reached via fiberStart in the arch-specific
// assembly (swap_GOARCH.s calls it directly as ·goEntry(SB), which is
// enough for the compiler to emit the ABI0 wrapper it needs). callerSlot
// is literally &ctx.sp (sp is Context's first field), which is how a
// Context recovers itself from the two bare words the trampoline carries.
func goEntry(arg uintptr, callerSlot *uintptr) {
	ctx := (*Context)(unsafe.Pointer(callerSlot))

	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, forced := r.(forcedUnwind); !forced {
					ctx.panicVal = r
				}
			}
			ctx.done = true
		}()
		ctx.entry(ctx, arg)
	}()

	// The body is done; park forever, returning the done/panic state to
	// every subsequent Resume without ever running user code again. Done
	// Contexts are never meant to be resumed, but parking defensively
	// here means a misbehaving caller faults into a loop instead of
	// corrupting an unrelated stack.
	for {
		arch.Swap(0, &ctx.sp)
	}
}
