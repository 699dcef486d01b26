package types

// Rule pairs a filename glob pattern with the destination subfolder
// (relative to the source root) that matching files are moved into.
type Rule struct {
	Pattern string
	Dest    string
}

// ConflictPolicy decides what happens when a file with the same name
// already exists at the destination.
type ConflictPolicy string

const (
	// ConflictOverwrite replaces the destination file. This matches the
	// platform-default rename behavior and is the default policy.
	ConflictOverwrite ConflictPolicy = "overwrite"

	// ConflictSkip leaves the source file where it is. A later run will
	// see it again, so skipping never loses a file.
	ConflictSkip ConflictPolicy = "skip"

	// ConflictRename moves the file under a numbered suffix
	// (NAME.1.md, NAME.2.md, ...) at the first free slot.
	ConflictRename ConflictPolicy = "rename"
)

// Valid reports whether p is one of the recognized policies.
func (p ConflictPolicy) Valid() bool {
	switch p {
	case ConflictOverwrite, ConflictSkip, ConflictRename:
		return true
	}
	return false
}

// MovedFile records a single relocation performed (or previewed) by a sweep.
type MovedFile struct {
	// Name is the base name of the file in the source root.
	Name string

	// Dest is the destination subfolder relative to the source root.
	Dest string

	// DestName is the base name at the destination. It differs from Name
	// only when the rename conflict policy picked a numbered suffix.
	DestName string

	// Rule is the glob pattern that matched, or "literal" for files from
	// the literal filename list.
	Rule string
}

// SkippedFile records a file left in place because of a destination conflict
// under the skip policy.
type SkippedFile struct {
	Name string
	Dest string
}

// SweepResult is the outcome of one sweep pass.
type SweepResult struct {
	// SourceRoot is the absolute path of the swept directory.
	SourceRoot string

	// ArchiveRoot is the absolute path of the archive subtree.
	ArchiveRoot string

	Moved   []MovedFile
	Skipped []SkippedFile

	// CreatedDirs lists layout directories that did not exist before the run.
	CreatedDirs []string

	// DryRun is true when no filesystem changes were made.
	DryRun bool
}

// MovedCount returns the number of relocated files.
func (r *SweepResult) MovedCount() int {
	return len(r.Moved)
}
