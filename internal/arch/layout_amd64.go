package arch

import "unsafe"

// StackAlignment is the platform stack alignment required at Base() on
// amd64 (SysV and the Go ABI both want 16-byte alignment at a call site).
const StackAlignment = 16

// SupportsUnwind reports whether the forced-unwind drop path
// (fiberctx.Context.ForceUnwind) is available on this port. amd64 uses frame-pointer-based unwinding, which
// this package maintains across every switch (see swap_amd64.s), so it is
// always available here.
const SupportsUnwind = true

// parentLinkOffset is the fixed offset below a stack's Base() at which
// SwapLink stores the outgoing stack pointer, for the incoming context's
// eventual unwind to find its way back to the parent.
const parentLinkOffset = 2 * WordSize

// Init prepares a freshly allocated stack so that the first Swap/SwapLink
// into it lands in goEntry(arg, callerSlot) with arg and callerSlot taken
// from that first switch's own arguments. It returns the initial stack
// pointer.
//
// The layout, from base downward:
//
//	+-------------------+ <- base (aligned)
//	|   parent link      |  (parentLinkOffset; written by SwapLink, not Init)
//	+-------------------+
//	|  return -> fiberStart |  <- initial SP; popped by switchcore's RET
//	+-------------------+
func Init(base uintptr) uintptr {
	sp := base - parentLinkOffset
	sp = alignDown(sp, StackAlignment)
	sp -= WordSize
	*(*uintptr)(unsafe.Pointer(sp)) = fiberStartAddr()
	return sp
}

func alignDown(p, align uintptr) uintptr { return p &^ (align - 1) }

// fiberStartAddr returns the address of the asm entry trampoline declared
// in swap_amd64.s. It is a function, not a package-level var, because Go
// forbids taking the address of an assembly symbol except through a
// declared Go function with a matching //go:linkname-free asm body.
func fiberStartAddr() uintptr

// Swap atomically saves the callee-saved state of the current context onto
// its own stack, switches the stack pointer to *target, restores the
// callee-saved state found there, and returns the argument the target
// transmitted. *target is overwritten with the stack pointer to use next
// time this context (the one now resuming) should be switched away from.
//
//go:noescape
func Swap(arg uintptr, target *uintptr) uintptr

// SwapLink is Swap plus recording the outgoing stack pointer into the
// parent-link slot fixed at parentLinkOffset below targetBase, so the
// target's own unwinder can find its way back to this frame.
//
// Forced unwind needs no separate entry point in this port: fiberctx
// drives it by calling SwapLink with a sentinel argument word the
// generator trampoline recognizes as "resume by panicking", which is
// plain Go panic/recover rather than a hand-written DWARF catch shim;
// see DESIGN.md.
//
//go:noescape
func SwapLink(arg uintptr, target *uintptr, targetBase uintptr) uintptr
