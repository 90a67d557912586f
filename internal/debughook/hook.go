//go:build !fiber_valgrind

package debughook

import "github.com/sirupsen/logrus"

// StackID is an opaque registration token returned by Register and
// consumed by Deregister.
type StackID struct{}

// Register records [limit, base) as a valid stack region. The default
// build does nothing but log at Debug level.
func Register(base, limit uintptr) StackID {
	logrus.WithFields(logrus.Fields{"base": base, "limit": limit}).Debug("fiber: stack registered (no-op hook)")
	return StackID{}
}

// Deregister releases a StackID obtained from Register.
func Deregister(StackID) {}
