//go:build !windows

package fiber

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func pageSize() uintptr { return uintptr(unix.Getpagesize()) }

func mapStack(length uintptr) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, err
	}
	return uintptr(unsafe.Pointer(&b[0])), nil
}

func protectStack(ptr uintptr) error {
	guard := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), pageSize())
	return unix.Mprotect(guard, unix.PROT_NONE)
}

func unmapStack(ptr, length uintptr) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length)
	return unix.Munmap(b)
}
