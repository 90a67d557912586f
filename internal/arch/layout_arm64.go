package arch

import "unsafe"

// StackAlignment matches AAPCS64: the stack must be 16-byte aligned at
// every call site, not just function entry, since aligned operands are
// required for atomic instructions.
const StackAlignment = 16

// SupportsUnwind mirrors amd64: frame-pointer (x29) based unwinding is
// maintained across the switch in swap_arm64.s.
const SupportsUnwind = true

const parentLinkOffset = 2 * WordSize

// Init lays out a fresh stack with a 16-byte resume header: the link
// register value swap_arm64.s's switchcore will load into R30 before its
// RET, plus one padding word keeping the header itself 16-byte aligned.
// ARM64's RET consults the link register, not the stack, unlike amd64's
// hardware CALL/RET, so unlike layout_amd64.go, this port's switch code
// must push and pop that resume address explicitly; see swap_arm64.s.
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

// SwapLink is Swap plus recording the outgoing stack pointer in the
// parent-link slot below targetBase, exactly as on amd64; see that port's
// doc comment for why forced unwind needs no separate entry point here.
//
//go:noescape
func SwapLink(arg uintptr, target *uintptr, targetBase uintptr) uintptr
