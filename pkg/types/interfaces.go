package types

import "io/fs"

// FS abstracts the filesystem operations docsweep performs so that
// commands can run against a real tree or an in-memory one in tests.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Move operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
