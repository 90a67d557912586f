//go:build windows

package fiber

import (
	"golang.org/x/sys/windows"
)

func pageSize() uintptr {
	var info windows.SystemInfo
	windows.GetSystemInfo(&info)
	return uintptr(info.PageSize)
}

func mapStack(length uintptr) (uintptr, error) {
	addr, err := windows.VirtualAlloc(0, length, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return 0, err
	}
	return addr, nil
}

func protectStack(ptr uintptr) error {
	var old uint32
	return windows.VirtualProtect(ptr, pageSize(), windows.PAGE_NOACCESS, &old)
}

func unmapStack(ptr, length uintptr) error {
	_ = length
	return windows.VirtualFree(ptr, 0, windows.MEM_RELEASE)
}
