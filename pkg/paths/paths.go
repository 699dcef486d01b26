package paths

import (
	"os"
	"path/filepath"

	"github.com/voxelpromo/docsweep/pkg/errors"
	"github.com/voxelpromo/docsweep/pkg/types"
)

// Environment variable names
const (
	// EnvSourceRoot overrides the documentation root to sweep
	EnvSourceRoot = "DOCSWEEP_SOURCE_ROOT"
)

// Archive subtree, relative to the source root
const (
	ArchiveDir    = "archive"
	FixesDir      = "archive/fixes"
	AnalysisDir   = "archive/analysis"
	OldReviewsDir = "archive/old-reviews"
)

// Organizational folders, relative to the source root. No rule populates
// them; they are created for manual use.
const (
	IntegrationsDir   = "integrations"
	DevelopmentDir    = "development"
	DeploymentDir     = "deployment"
	GettingStartedDir = "getting-started"
)

// Layout returns the destination subpaths, in creation order.
func Layout() []string {
	return []string{
		FixesDir,
		AnalysisDir,
		OldReviewsDir,
		IntegrationsDir,
		DevelopmentDir,
		DeploymentDir,
		GettingStartedDir,
	}
}

// Paths provides resolved locations for a docsweep run
type Paths struct {
	sourceRoot string
}

// Resolve determines the source root for a run. Precedence:
// explicit argument (the --source-root flag), DOCSWEEP_SOURCE_ROOT,
// the configured root, then the current working directory.
func Resolve(explicit, configured string) (*Paths, error) {
	root := explicit
	if root == "" {
		root = os.Getenv(EnvSourceRoot)
	}
	if root == "" {
		root = configured
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrSourceRoot, "failed to determine working directory")
		}
		root = cwd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceRoot, "invalid source root %q", root)
	}

	return &Paths{sourceRoot: abs}, nil
}

// Validate checks that the source root exists and is a directory.
func (p *Paths) Validate(fs types.FS) error {
	info, err := fs.Stat(p.sourceRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrSourceNotFound, "source root does not exist: %s", p.sourceRoot)
		}
		return errors.Wrapf(err, errors.ErrSourceRoot, "failed to stat source root %s", p.sourceRoot)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrSourceRoot, "source root is not a directory: %s", p.sourceRoot)
	}
	return nil
}

// SourceRoot returns the absolute documentation root being swept.
func (p *Paths) SourceRoot() string {
	return p.sourceRoot
}

// ArchiveRoot returns the absolute path of the archive subtree.
func (p *Paths) ArchiveRoot() string {
	return filepath.Join(p.sourceRoot, ArchiveDir)
}

// Join resolves a subpath relative to the source root.
func (p *Paths) Join(rel string) string {
	return filepath.Join(p.sourceRoot, rel)
}
