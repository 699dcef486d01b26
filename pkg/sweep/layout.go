package sweep

import (
	"os"

	"github.com/voxelpromo/docsweep/pkg/errors"
	"github.com/voxelpromo/docsweep/pkg/logging"
	"github.com/voxelpromo/docsweep/pkg/paths"
	"github.com/voxelpromo/docsweep/pkg/types"
)

// EnsureLayout idempotently creates the destination folders under the
// source root and returns the subpaths that did not exist before. When
// dryRun is set nothing is created; the return value still reports what
// a real run would create.
func EnsureLayout(fs types.FS, p *paths.Paths, dryRun bool) ([]string, error) {
	logger := logging.GetLogger("sweep.layout")

	var created []string
	for _, rel := range paths.Layout() {
		abs := p.Join(rel)

		info, err := fs.Stat(abs)
		if err == nil {
			if !info.IsDir() {
				return nil, errors.Newf(errors.ErrDirCreate,
					"cannot create %s: a file with that name exists", abs)
			}
			continue
		}
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to stat %s", abs)
		}

		if !dryRun {
			if err := fs.MkdirAll(abs, 0755); err != nil {
				return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", abs)
			}
		}
		logger.Debug().Str("dir", abs).Bool("dry_run", dryRun).Msg("Created layout directory")
		created = append(created, rel)
	}

	return created, nil
}
