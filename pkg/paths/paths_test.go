// Test Type: Unit Test
// Description: Tests for source root resolution and the fixed layout

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelpromo/docsweep/pkg/errors"
	"github.com/voxelpromo/docsweep/pkg/filesystem"
	"github.com/voxelpromo/docsweep/pkg/paths"
)

func TestResolve(t *testing.T) {
	t.Run("explicit_wins_over_env", func(t *testing.T) {
		t.Setenv(paths.EnvSourceRoot, "/env/docs")

		p, err := paths.Resolve("/flag/docs", "/config/docs")
		require.NoError(t, err)
		assert.Equal(t, "/flag/docs", p.SourceRoot())
	})

	t.Run("env_wins_over_config", func(t *testing.T) {
		t.Setenv(paths.EnvSourceRoot, "/env/docs")

		p, err := paths.Resolve("", "/config/docs")
		require.NoError(t, err)
		assert.Equal(t, "/env/docs", p.SourceRoot())
	})

	t.Run("config_used_when_no_flag_or_env", func(t *testing.T) {
		t.Setenv(paths.EnvSourceRoot, "")

		p, err := paths.Resolve("", "/config/docs")
		require.NoError(t, err)
		assert.Equal(t, "/config/docs", p.SourceRoot())
	})

	t.Run("falls_back_to_cwd", func(t *testing.T) {
		t.Setenv(paths.EnvSourceRoot, "")

		p, err := paths.Resolve("", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(p.SourceRoot()))
	})

	t.Run("relative_path_made_absolute", func(t *testing.T) {
		p, err := paths.Resolve("docs", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(p.SourceRoot()))
	})
}

func TestValidate(t *testing.T) {
	t.Run("missing_root", func(t *testing.T) {
		fs := filesystem.NewMemory()

		p, err := paths.Resolve("/docs", "")
		require.NoError(t, err)

		err = p.Validate(fs)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrSourceNotFound))
	})

	t.Run("root_is_a_file", func(t *testing.T) {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.WriteFile("/docs", []byte("not a dir"), 0644))

		p, err := paths.Resolve("/docs", "")
		require.NoError(t, err)

		err = p.Validate(fs)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrSourceRoot))
	})

	t.Run("valid_root", func(t *testing.T) {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.MkdirAll("/docs", 0755))

		p, err := paths.Resolve("/docs", "")
		require.NoError(t, err)
		require.NoError(t, p.Validate(fs))
	})
}

func TestLayout(t *testing.T) {
	layout := paths.Layout()
	assert.Len(t, layout, 7)
	assert.Equal(t, "archive/fixes", layout[0])
	assert.Equal(t, "archive/analysis", layout[1])
	assert.Equal(t, "archive/old-reviews", layout[2])
	assert.Contains(t, layout, "integrations")
	assert.Contains(t, layout, "development")
	assert.Contains(t, layout, "deployment")
	assert.Contains(t, layout, "getting-started")
}

func TestArchiveRoot(t *testing.T) {
	p, err := paths.Resolve("/docs", "")
	require.NoError(t, err)
	assert.Equal(t, "/docs/archive", p.ArchiveRoot())
	assert.Equal(t, "/docs/archive/fixes", p.Join(paths.FixesDir))
}
