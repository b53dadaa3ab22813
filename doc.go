// Package algosparse is a thin dispatch layer over a native GPU sparse
// linear-algebra library.
//
// The package exposes one type-generic entry point per sparse operation
// (Gthr, Coo2csr, CoosortBufferSize, CoosortByRow, Gemmi) that resolves to
// the precision-specific native routine, binds each call to a caller-supplied
// execution stream, and translates the native status-code failure model into
// Go errors. It implements no kernel math of its own: all work is delegated
// to a registered Backend.
//
// A CPU reference backend is included for development and tests; a real
// device backend is expected to be registered at runtime.
package algosparse
