// Package fiberctx implements the raw, untyped context-switch primitive
// that sits directly on top of internal/arch: a Context owns one prepared
// stack and the single shared switch cell ping-ponged between whichever
// side (owner or running body) is currently suspended.
//
// Everything here operates in terms of bare uintptr payloads; marshalling
// those into and out of Go values of caller-chosen types is the public
// fiber package's job (internal/valuepass).
package fiberctx
