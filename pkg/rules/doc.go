// Package rules defines the filename rules that drive a sweep: an ordered
// table of glob patterns mapped to archive destinations, a fixed list of
// literal filenames, and a scanner that applies them to the direct children
// of a documentation root.
package rules
