package arch

import "unsafe"

// StackAlignment follows the cdecl/SysV386 convention of 16-byte alignment
// at Base(); individual call sites only require 4-byte alignment but
// callees assuming SSE locals want 16.
const StackAlignment = 16

const SupportsUnwind = true

const parentLinkOffset = 2 * WordSize

// Init mirrors layout_amd64.go: amd64 and 386 share the same hardware
// CALL/RET convention (RET pops the resume address straight off the
// stack), so the layout and switch mechanics are identical modulo word
// width.
func Init(base uintptr) uintptr {
	sp := base - parentLinkOffset
	sp = alignDown(sp, StackAlignment)
	sp -= WordSize
	*(*uintptr)(unsafe.Pointer(sp)) = fiberStartAddr()
	return sp
}

func alignDown(p, align uintptr) uintptr { return p &^ (align - 1) }

func fiberStartAddr() uintptr

//go:noescape
func Swap(arg uintptr, target *uintptr) uintptr

//go:noescape
func SwapLink(arg uintptr, target *uintptr, targetBase uintptr) uintptr
