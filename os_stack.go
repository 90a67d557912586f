package fiber

import (
	"github.com/pkg/errors"

	"github.com/corostack/fiber/internal/arch"
)

// minStackSize is the smallest OSStack size on ports that support
// cross-stack unwinding: stacks must be at least 16KB to leave the
// unwinder room to work. Ports without unwind support only require one
// page.
const minStackSize = 16384

// OSStack holds a guarded stack allocated with the operating system's
// anonymous memory mapping facility: one inaccessible guard page below an
// otherwise ordinary mapping, so overrunning the stack faults instead of
// silently corrupting whatever memory happened to follow it.
type OSStack struct {
	ptr uintptr
	len uintptr
}

// NewOSStack allocates a stack with at least size accessible bytes.
// size == 0, or any size below the port's minimum, is clamped up to
// that minimum: 16KB on ports that support cross-stack unwinding, one
// page otherwise. The returned stack must be released with Close once
// no generator is using it.
func NewOSStack(size int) (OSStack, error) {
	page := pageSize()
	length := uintptr(size)
	if arch.SupportsUnwind && length < minStackSize {
		length = minStackSize
	}
	if length < page {
		length = page
	}
	length = (length + page - 1) &^ (page - 1)
	length += page // guard page

	ptr, err := mapStack(length)
	if err != nil {
		return OSStack{}, errors.Wrap(err, "fiber: map stack")
	}
	if err := protectStack(ptr); err != nil {
		_ = unmapStack(ptr, length)
		return OSStack{}, errors.Wrap(err, "fiber: protect guard page")
	}
	return OSStack{ptr: ptr, len: length}, nil
}

func (s OSStack) Base() uintptr  { return s.ptr + s.len }
func (s OSStack) Limit() uintptr { return s.ptr + pageSize() }

func (OSStack) guarded() {}

// Close unmaps the stack's memory. It must only be called once no
// generator built on this stack is live.
func (s OSStack) Close() error {
	if err := unmapStack(s.ptr, s.len); err != nil {
		return errors.Wrap(err, "fiber: unmap stack")
	}
	return nil
}

var _ Guarded = OSStack{}
