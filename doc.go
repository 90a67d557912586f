// Package fiber implements cooperatively-scheduled execution contexts
// ("fibers") that switch entirely in user space: control transfers between
// contexts by saving the active register set onto the outgoing stack and
// restoring the register set from the incoming stack. There is no
// scheduler, no timers, no I/O layer and no preemption: a fiber runs until
// it explicitly suspends.
//
// The package exposes two layers. Stack (and its implementations
// SliceStack, HeapStack, OSStack) own the raw memory a fiber runs on.
// Generator wraps the unsafe context-switch primitive in internal/fiberctx
// into a typed, safe producer/consumer: a function F(*Yielder[I, O], I)
// runs on a private stack, the caller drives it with Resume, and the
// function suspends with Yielder.Suspend.
package fiber
