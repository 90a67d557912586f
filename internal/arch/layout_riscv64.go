package arch

import "unsafe"

// StackAlignment follows the RISC-V calling convention: 16 bytes.
//
// Go has no riscv32 GOARCH, only riscv64; this port targets the 64-bit
// ISA the toolchain actually ships; see DESIGN.md.
const StackAlignment = 16

const SupportsUnwind = true

const parentLinkOffset = 2 * WordSize

// Init reserves the same two-word resume header as arm64: RISC-V's RET
// (JALR through the link register X1) doesn't consult the stack either,
// so swap_riscv64.s's switchcore pushes/pops the resume PC manually.
func Init(base uintptr) uintptr {
	sp := base - parentLinkOffset
	sp = alignDown(sp, StackAlignment)
	sp -= 16
	*(*uintptr)(unsafe.Pointer(sp)) = fiberStartAddr()
	return sp
}

func alignDown(p, align uintptr) uintptr { return p &^ (align - 1) }

func fiberStartAddr() uintptr

//go:noescape
func Swap(arg uintptr, target *uintptr) uintptr

//go:noescape
func SwapLink(arg uintptr, target *uintptr, targetBase uintptr) uintptr
