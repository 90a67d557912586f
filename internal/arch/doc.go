// Package arch implements the per-ISA context-switch primitive: preparing
// a freshly allocated stack (Init) and atomically switching between two
// stacks while carrying a single word of payload in each direction (Swap,
// SwapLink). Forced unwind has no separate entry point at this layer; see
// SwapLink's doc comment.
//
// Every exported name here has exactly one implementation per supported
// GOARCH, selected by the Go toolchain itself through the usual
// filename-suffix build constraint (layout_amd64.go pairs with
// swap_amd64.s, and so on), the same mechanism wazero's backend/isa
// packages rely on for their GOARCH-specific encoders, just applied one
// level down at the build-tag-dispatch stage instead of a type switch.
//
// Go's hand-written-assembly calling convention (ABI0) defines no
// general-purpose callee-saved registers at all. Unlike the SysV/AAPCS C
// ABIs most native coroutine implementations target, nothing here needs
// to spill rbx, r12-r15, x19-x28, or their equivalents. The only
// registers that must survive the switch are the frame pointer (kept so
// external frame-pointer walkers (pprof, gdb, perf) can still cross
// from a fiber's stack back to its parent) and, on architectures that
// have one, the link register.
package arch
