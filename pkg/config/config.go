package config

import (
	"strings"

	"github.com/voxelpromo/docsweep/pkg/types"
)

// Config is the resolved docsweep configuration
type Config struct {
	Archive ArchiveConfig `koanf:"archive" toml:"archive"`
}

// ArchiveConfig holds the sweep options recognized in config files
type ArchiveConfig struct {
	// SourceRoot is the documentation root to sweep. Empty means the
	// current working directory (flags and env take precedence either way).
	SourceRoot string `koanf:"source_root" toml:"source_root"`

	// OnConflict decides what to do when a file with the same name already
	// exists at the destination: overwrite, skip, or rename.
	OnConflict string `koanf:"on_conflict" toml:"on_conflict"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Archive: ArchiveConfig{
			SourceRoot: "",
			OnConflict: string(types.ConflictOverwrite),
		},
	}
}

// ConflictPolicy returns the configured policy as a typed value
func (c *Config) ConflictPolicy() types.ConflictPolicy {
	return types.ConflictPolicy(strings.ToLower(c.Archive.OnConflict))
}
