// Package debughook registers a stack's address range with an external
// memory-error detector before it is switched onto, and deregisters it
// once reclaimed, so tools like Valgrind don't mistake a context switch
// for stack corruption.
//
// The default build is a no-op (most environments don't run under
// Valgrind); the real client-request shim lives behind the "fiber_valgrind"
// build tag in hook_valgrind.go, mirroring the original library's
// Cargo-feature-gated debug/valgrind.rs.
package debughook
