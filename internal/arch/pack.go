package arch

import "unsafe"

// WordSize is the width, in bytes, of the single machine word carried by
// Swap/SwapLink in each direction. internal/valuepass uses the same
// constant (duplicated rather than imported, since arch must not depend on
// anything that could pull in generics-heavy code. It is linked into
// every build regardless of which Stack or Generator type parameters a
// caller instantiates).
const WordSize = unsafe.Sizeof(uintptr(0))
