// Package sweep implements the archiver engine: it ensures the destination
// folder layout exists, applies the rule table to the loose files in the
// source root, and relocates each claimed file into the archive subtree.
//
// A sweep is a single linear pass with fail-fast error handling and no
// rollback. Interrupting a run leaves a valid, partially swept tree: files
// already moved stay moved, and re-running never double-moves or loses a
// file, because moved files no longer match in the source root.
package sweep
