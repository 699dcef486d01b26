// Test Type: Unit Test
// Description: Tests for the sweep engine - layout creation, rule-driven
// moves, literal moves, idempotence, conflict policies and dry-run

package sweep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelpromo/docsweep/pkg/errors"
	"github.com/voxelpromo/docsweep/pkg/filesystem"
	"github.com/voxelpromo/docsweep/pkg/paths"
	"github.com/voxelpromo/docsweep/pkg/sweep"
	"github.com/voxelpromo/docsweep/pkg/testutil"
	"github.com/voxelpromo/docsweep/pkg/types"
)

func newDocsRoot(t *testing.T, files map[string]string, dirs ...string) (types.FS, *paths.Paths) {
	t.Helper()

	fs := testutil.SetupDocsRoot(t, files, dirs...)
	p, err := paths.Resolve(testutil.DocsRoot, "")
	require.NoError(t, err)
	return fs, p
}

func fileExists(t *testing.T, fs types.FS, path string) bool {
	t.Helper()
	return testutil.FileExists(t, fs, path)
}

func TestRun_EmptyRoot(t *testing.T) {
	fs, p := newDocsRoot(t, nil)

	result, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
	require.NoError(t, err)

	assert.Equal(t, 0, result.MovedCount())
	assert.Len(t, result.CreatedDirs, 7)
	assert.Equal(t, "/docs/archive", result.ArchiveRoot)

	for _, rel := range paths.Layout() {
		assert.True(t, fileExists(t, fs, p.Join(rel)), "layout dir %s should exist", rel)
		entries, err := fs.ReadDir(p.Join(rel))
		require.NoError(t, err)
		assert.Empty(t, entries, "layout dir %s should be empty", rel)
	}
}

func TestRun_MovesMatchedFiles(t *testing.T) {
	fs, p := newDocsRoot(t, map[string]string{
		"LOGIN_FIX.md":           "fix notes",
		"DATA_ANALYSIS.md":       "analysis",
		"PROJECT_REVIEW_2024.md": "review",
		"README.md":              "# readme",
	})

	result, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
	require.NoError(t, err)

	assert.Equal(t, 3, result.MovedCount())

	assert.True(t, fileExists(t, fs, "/docs/archive/fixes/LOGIN_FIX.md"))
	assert.True(t, fileExists(t, fs, "/docs/archive/analysis/DATA_ANALYSIS.md"))
	assert.True(t, fileExists(t, fs, "/docs/archive/old-reviews/PROJECT_REVIEW_2024.md"))

	// Moved, not copied
	assert.False(t, fileExists(t, fs, "/docs/LOGIN_FIX.md"))
	assert.False(t, fileExists(t, fs, "/docs/DATA_ANALYSIS.md"))
	assert.False(t, fileExists(t, fs, "/docs/PROJECT_REVIEW_2024.md"))

	// Unmatched files stay put
	assert.True(t, fileExists(t, fs, "/docs/README.md"))
}

func TestRun_FullSweep(t *testing.T) {
	fs, p := newDocsRoot(t, map[string]string{
		"LOGIN_FIX.md":           "fix notes",
		"DATA_ANALYSIS.md":       "analysis",
		"PROJECT_REVIEW_2024.md": "review",
		"NEXT_STEPS.md":          "steps",
		"README.md":              "# readme",
	}, "PROJECT_REVIEW_TEMP")

	result, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
	require.NoError(t, err)

	assert.Equal(t, 4, result.MovedCount())
	assert.True(t, fileExists(t, fs, "/docs/archive/fixes/LOGIN_FIX.md"))
	assert.True(t, fileExists(t, fs, "/docs/archive/analysis/DATA_ANALYSIS.md"))
	assert.True(t, fileExists(t, fs, "/docs/archive/old-reviews/PROJECT_REVIEW_2024.md"))
	assert.True(t, fileExists(t, fs, "/docs/archive/old-reviews/NEXT_STEPS.md"))

	// Unmatched file and directory stay put
	assert.True(t, fileExists(t, fs, "/docs/README.md"))
	assert.True(t, fileExists(t, fs, "/docs/PROJECT_REVIEW_TEMP"))

	second, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
	require.NoError(t, err)
	assert.Equal(t, 0, second.MovedCount())
}

func TestRun_SecondRunIsIdempotent(t *testing.T) {
	fs, p := newDocsRoot(t, map[string]string{
		"LOGIN_FIX.md":  "fix notes",
		"NEXT_STEPS.md": "steps",
	})

	first, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
	require.NoError(t, err)
	assert.Equal(t, 2, first.MovedCount())

	second, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
	require.NoError(t, err)
	assert.Equal(t, 0, second.MovedCount())
	assert.Empty(t, second.CreatedDirs)
}

func TestRun_DirectoryMatchingPatternStays(t *testing.T) {
	fs, p := newDocsRoot(t, nil, "PROJECT_REVIEW_TEMP")

	result, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
	require.NoError(t, err)

	assert.Equal(t, 0, result.MovedCount())
	assert.True(t, fileExists(t, fs, "/docs/PROJECT_REVIEW_TEMP"))
}

func TestRun_LiteralFiles(t *testing.T) {
	t.Run("present_literal_moved", func(t *testing.T) {
		fs, p := newDocsRoot(t, map[string]string{
			"NEXT_STEPS.md": "steps",
		})

		result, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
		require.NoError(t, err)

		assert.Equal(t, 1, result.MovedCount())
		assert.True(t, fileExists(t, fs, "/docs/archive/old-reviews/NEXT_STEPS.md"))
		assert.False(t, fileExists(t, fs, "/docs/NEXT_STEPS.md"))
	})

	t.Run("absent_literal_skipped_silently", func(t *testing.T) {
		fs, p := newDocsRoot(t, nil)

		result, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
		require.NoError(t, err)
		assert.Equal(t, 0, result.MovedCount())
	})
}

func TestRun_ConflictPolicies(t *testing.T) {
	t.Run("overwrite_replaces_destination", func(t *testing.T) {
		fs, p := newDocsRoot(t, map[string]string{
			"LOGIN_FIX.md": "new content",
		})
		require.NoError(t, fs.MkdirAll("/docs/archive/fixes", 0755))
		require.NoError(t, fs.WriteFile("/docs/archive/fixes/LOGIN_FIX.md", []byte("old content"), 0644))

		result, err := sweep.Run(sweep.Options{
			Paths:      p,
			FileSystem: fs,
			OnConflict: types.ConflictOverwrite,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.MovedCount())

		data, err := fs.ReadFile("/docs/archive/fixes/LOGIN_FIX.md")
		require.NoError(t, err)
		assert.Equal(t, "new content", string(data))
		assert.False(t, fileExists(t, fs, "/docs/LOGIN_FIX.md"))
	})

	t.Run("skip_leaves_source_in_place", func(t *testing.T) {
		fs, p := newDocsRoot(t, map[string]string{
			"LOGIN_FIX.md": "new content",
		})
		require.NoError(t, fs.MkdirAll("/docs/archive/fixes", 0755))
		require.NoError(t, fs.WriteFile("/docs/archive/fixes/LOGIN_FIX.md", []byte("old content"), 0644))

		result, err := sweep.Run(sweep.Options{
			Paths:      p,
			FileSystem: fs,
			OnConflict: types.ConflictSkip,
		})
		require.NoError(t, err)

		assert.Equal(t, 0, result.MovedCount())
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, "LOGIN_FIX.md", result.Skipped[0].Name)

		// Skipping never loses a file: source and destination both survive
		assert.True(t, fileExists(t, fs, "/docs/LOGIN_FIX.md"))
		data, err := fs.ReadFile("/docs/archive/fixes/LOGIN_FIX.md")
		require.NoError(t, err)
		assert.Equal(t, "old content", string(data))
	})

	t.Run("rename_uses_first_free_slot", func(t *testing.T) {
		fs, p := newDocsRoot(t, map[string]string{
			"LOGIN_FIX.md": "new content",
		})
		require.NoError(t, fs.MkdirAll("/docs/archive/fixes", 0755))
		require.NoError(t, fs.WriteFile("/docs/archive/fixes/LOGIN_FIX.md", []byte("old"), 0644))
		require.NoError(t, fs.WriteFile("/docs/archive/fixes/LOGIN_FIX.1.md", []byte("older"), 0644))

		result, err := sweep.Run(sweep.Options{
			Paths:      p,
			FileSystem: fs,
			OnConflict: types.ConflictRename,
		})
		require.NoError(t, err)

		require.Equal(t, 1, result.MovedCount())
		assert.Equal(t, "LOGIN_FIX.2.md", result.Moved[0].DestName)

		data, err := fs.ReadFile("/docs/archive/fixes/LOGIN_FIX.2.md")
		require.NoError(t, err)
		assert.Equal(t, "new content", string(data))
	})

	t.Run("invalid_policy_rejected", func(t *testing.T) {
		fs, p := newDocsRoot(t, nil)

		_, err := sweep.Run(sweep.Options{
			Paths:      p,
			FileSystem: fs,
			OnConflict: types.ConflictPolicy("explode"),
		})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfigValid))
	})
}

func TestRun_DryRun(t *testing.T) {
	fs, p := newDocsRoot(t, map[string]string{
		"LOGIN_FIX.md": "fix notes",
	})

	result, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs, DryRun: true})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.MovedCount())
	assert.Len(t, result.CreatedDirs, 7)

	// Nothing actually changed
	assert.True(t, fileExists(t, fs, "/docs/LOGIN_FIX.md"))
	assert.False(t, fileExists(t, fs, "/docs/archive"))
}

func TestRun_MissingSourceRoot(t *testing.T) {
	fs := filesystem.NewMemory()
	p, err := paths.Resolve("/nowhere", "")
	require.NoError(t, err)

	_, err = sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSourceNotFound))
}

func TestRun_LayoutCollisionWithFile(t *testing.T) {
	fs, p := newDocsRoot(t, map[string]string{
		"integrations": "a file where a folder should go",
	})

	_, err := sweep.Run(sweep.Options{Paths: p, FileSystem: fs})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDirCreate))
}
