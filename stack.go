package fiber

import "github.com/corostack/fiber/internal/arch"

// Alignment is the platform stack alignment required at the top of every
// Stack. It is 16 bytes on amd64/arm64/386 (386 keeps 16 for callees that
// assume SSE-aligned locals, although its call sites need only 4), 8 on
// arm, and 16 on riscv64.
const Alignment = arch.StackAlignment

// Stack is a contiguous region of memory a fiber runs on. Base returns the
// high address, one past the last usable byte; Limit returns the low
// address. Every byte in [Limit, Base) must be readable and writable, and
// Base must satisfy Alignment.
//
// A Stack is single-owner: whatever constructs one is responsible for
// keeping it alive for as long as a Context or Generator runs on it, and
// for releasing it exactly once.
type Stack interface {
	Base() uintptr
	Limit() uintptr
}

// Guarded is implemented by Stack values that additionally guarantee the
// page immediately below Limit faults on any access, so that stack
// overflow is caught instead of silently corrupting adjacent memory.
type Guarded interface {
	Stack
	guarded()
}

// size returns the number of usable bytes in s.
func size(s Stack) uintptr { return s.Base() - s.Limit() }

func alignUp(p, align uintptr) uintptr   { return (p + align - 1) &^ (align - 1) }
func alignDown(p, align uintptr) uintptr { return p &^ (align - 1) }
