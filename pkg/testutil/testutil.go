// Package testutil provides shared helpers for docsweep tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelpromo/docsweep/pkg/filesystem"
	"github.com/voxelpromo/docsweep/pkg/types"
)

// DocsRoot is the conventional source root used by in-memory tests
const DocsRoot = "/docs"

// SetupDocsRoot builds an in-memory documentation root populated with the
// given loose files and subdirectories.
func SetupDocsRoot(t *testing.T, files map[string]string, dirs ...string) types.FS {
	t.Helper()

	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll(DocsRoot, 0755))
	for name, content := range files {
		require.NoError(t, fs.WriteFile(DocsRoot+"/"+name, []byte(content), 0644))
	}
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(DocsRoot+"/"+dir, 0755))
	}
	return fs
}

// FileExists reports whether path exists on fs.
func FileExists(t *testing.T, fs types.FS, path string) bool {
	t.Helper()
	_, err := fs.Stat(path)
	return err == nil
}
