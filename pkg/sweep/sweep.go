package sweep

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/voxelpromo/docsweep/pkg/errors"
	"github.com/voxelpromo/docsweep/pkg/filesystem"
	"github.com/voxelpromo/docsweep/pkg/logging"
	"github.com/voxelpromo/docsweep/pkg/paths"
	"github.com/voxelpromo/docsweep/pkg/rules"
	"github.com/voxelpromo/docsweep/pkg/types"
)

// DefaultFS returns the filesystem used when none is injected
func DefaultFS() types.FS {
	return filesystem.NewOS()
}

// Options holds options for a sweep run
type Options struct {
	Paths      *paths.Paths
	OnConflict types.ConflictPolicy
	DryRun     bool
	FileSystem types.FS // Allow injecting a filesystem for testing
}

// Run performs one sweep pass: ensure the folder layout, apply the glob
// rules, relocate the literal filenames, and return the result. Errors are
// fail-fast: the first failed directory creation or move aborts the run,
// leaving prior moves in place.
func Run(opts Options) (*types.SweepResult, error) {
	logger := logging.GetLogger("sweep")
	done := logging.LogOperationStart(logger, "sweep")
	defer done()

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	policy := opts.OnConflict
	if policy == "" {
		policy = types.ConflictOverwrite
	}
	if !policy.Valid() {
		return nil, errors.Newf(errors.ErrConfigValid, "invalid conflict policy %q", policy)
	}

	p := opts.Paths
	logger.Info().
		Str("source_root", p.SourceRoot()).
		Str("on_conflict", string(policy)).
		Bool("dry_run", opts.DryRun).
		Msg("Sweeping documentation root")

	if err := p.Validate(fs); err != nil {
		return nil, err
	}

	result := &types.SweepResult{
		SourceRoot:  p.SourceRoot(),
		ArchiveRoot: p.ArchiveRoot(),
		DryRun:      opts.DryRun,
	}

	created, err := EnsureLayout(fs, p, opts.DryRun)
	if err != nil {
		return nil, err
	}
	result.CreatedDirs = created

	scanner := rules.NewScanner(fs)
	matches, err := scanner.Scan(p.SourceRoot())
	if err != nil {
		return nil, err
	}

	for _, match := range matches {
		moved, skipped, err := moveOne(fs, logger, p, match, policy, opts.DryRun)
		if err != nil {
			return nil, err
		}
		if skipped != nil {
			result.Skipped = append(result.Skipped, *skipped)
			continue
		}
		result.Moved = append(result.Moved, *moved)
	}

	logger.Info().
		Int("moved", result.MovedCount()).
		Int("skipped", len(result.Skipped)).
		Bool("dry_run", opts.DryRun).
		Msg("Sweep completed")

	return result, nil
}

// moveOne relocates a single matched file, honoring the conflict policy.
func moveOne(fs types.FS, logger zerolog.Logger, p *paths.Paths, match rules.Match, policy types.ConflictPolicy, dryRun bool) (*types.MovedFile, *types.SkippedFile, error) {
	srcPath := filepath.Join(p.SourceRoot(), match.Name)
	destDir := p.Join(match.Dest)

	destName, skip, err := resolveConflict(fs, destDir, match.Name, policy)
	if err != nil {
		return nil, nil, err
	}
	if skip {
		logger.Warn().
			Str("file", match.Name).
			Str("dest", match.Dest).
			Msg("Destination exists, leaving file in place")
		return nil, &types.SkippedFile{Name: match.Name, Dest: match.Dest}, nil
	}

	destPath := filepath.Join(destDir, destName)

	if !dryRun {
		// Under the overwrite policy the destination is removed first so
		// behavior is identical across filesystem implementations
		if destName == match.Name && policy == types.ConflictOverwrite {
			if err := fs.Remove(destPath); err != nil && !os.IsNotExist(err) {
				return nil, nil, errors.Wrapf(err, errors.ErrFileMove,
					"failed to replace %s", destPath)
			}
		}
		if err := fs.Rename(srcPath, destPath); err != nil {
			return nil, nil, errors.Wrapf(err, errors.ErrFileMove,
				"failed to move %s to %s", srcPath, destPath)
		}
	}

	logger.Info().
		Str("file", match.Name).
		Str("dest", match.Dest).
		Str("rule", match.Rule).
		Bool("dry_run", dryRun).
		Msg("Moved file")

	return &types.MovedFile{
		Name:     match.Name,
		Dest:     match.Dest,
		DestName: destName,
		Rule:     match.Rule,
	}, nil, nil
}
