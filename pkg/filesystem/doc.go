// Package filesystem provides filesystem implementations for docsweep.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed one used
// for in-memory testing.
package filesystem
