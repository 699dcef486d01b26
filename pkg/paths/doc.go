// Package paths resolves the documentation root for a run and names the
// fixed destination layout beneath it.
package paths
