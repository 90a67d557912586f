//go:build fiber_valgrind

package debughook

/*
#cgo LDFLAGS:
#include <valgrind/valgrind.h>

static unsigned long fiber_stack_register(void *limit, void *base) {
	return VALGRIND_STACK_REGISTER(limit, base);
}

static void fiber_stack_deregister(unsigned long id) {
	VALGRIND_STACK_DEREGISTER(id);
}
*/
import "C"

import (
	"unsafe"

	"github.com/sirupsen/logrus"
)

// StackID carries the Valgrind client-request handle returned by
// VALGRIND_STACK_REGISTER.
type StackID struct {
	id C.ulong
}

// Register tells Valgrind that [limit, base) is a valid stack, so its
// memcheck tool doesn't flag ordinary context-switch reads/writes inside
// it as accessing unallocated memory.
func Register(base, limit uintptr) StackID {
	id := C.fiber_stack_register(unsafe.Pointer(limit), unsafe.Pointer(base)) //nolint:govet // cgo pointer passing is intentional here
	logrus.WithFields(logrus.Fields{"base": base, "limit": limit, "id": uint64(id)}).Debug("fiber: stack registered with valgrind")
	return StackID{id: id}
}

// Deregister releases a StackID obtained from Register.
func Deregister(s StackID) {
	C.fiber_stack_deregister(s.id)
}
