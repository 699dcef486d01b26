package sweep

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/voxelpromo/docsweep/pkg/errors"
	"github.com/voxelpromo/docsweep/pkg/types"
)

// maxRenameAttempts bounds the numbered-suffix search under the rename policy
const maxRenameAttempts = 1000

// resolveConflict decides the destination base name for a move, given the
// configured policy. It returns the name to move to, or skip=true when the
// policy leaves the file in place.
func resolveConflict(fs types.FS, destDir, name string, policy types.ConflictPolicy) (destName string, skip bool, err error) {
	destPath := filepath.Join(destDir, name)

	_, statErr := fs.Stat(destPath)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return name, false, nil
		}
		return "", false, errors.Wrapf(statErr, errors.ErrConflict, "failed to stat %s", destPath)
	}

	switch policy {
	case types.ConflictOverwrite:
		return name, false, nil
	case types.ConflictSkip:
		return "", true, nil
	case types.ConflictRename:
		for i := 1; i <= maxRenameAttempts; i++ {
			candidate := numberedName(name, i)
			if _, err := fs.Stat(filepath.Join(destDir, candidate)); os.IsNotExist(err) {
				return candidate, false, nil
			}
		}
		return "", false, errors.Newf(errors.ErrConflict,
			"no free rename slot for %s in %s", name, destDir)
	default:
		return "", false, errors.Newf(errors.ErrConflict, "unknown conflict policy %q", policy)
	}
}

// numberedName inserts a numeric suffix before the extension:
// NEXT_STEPS.md, 1 -> NEXT_STEPS.1.md
func numberedName(name string, i int) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s.%d%s", stem, i, ext)
}
