package rules

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/voxelpromo/docsweep/pkg/errors"
	"github.com/voxelpromo/docsweep/pkg/logging"
	"github.com/voxelpromo/docsweep/pkg/types"
)

// Match represents a file claimed by a rule, before any move happens
type Match struct {
	// Name is the base name of the file in the source root
	Name string

	// Dest is the destination subfolder relative to the source root
	Dest string

	// Rule is the glob pattern that claimed the file, or "literal"
	Rule string
}

// Scanner applies the rule table to the direct children of a source root
type Scanner struct {
	rules    []types.Rule
	literals []string
	fs       types.FS
	logger   zerolog.Logger
}

// NewScanner creates a scanner with the built-in rules and literal list
func NewScanner(fs types.FS) *Scanner {
	return NewScannerWithRules(DefaultRules(), LiteralFiles(), fs)
}

// NewScannerWithRules creates a scanner with a custom rule table, used by tests
func NewScannerWithRules(rules []types.Rule, literals []string, fs types.FS) *Scanner {
	return &Scanner{
		rules:    rules,
		literals: literals,
		fs:       fs,
		logger:   logging.GetLogger("rules.scanner"),
	}
}

// Scan enumerates the direct children of root and returns the files each
// rule claims, in rule order. Directories are never matched, even when
// their name fits a pattern. Each file is claimed at most once, by the
// first applicable rule; literal filenames are checked after all glob
// rules, so a literal that also fits an earlier glob is claimed by the glob.
func (s *Scanner) Scan(root string) ([]Match, error) {
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScan, "failed to read source root %s", root)
	}

	// Snapshot of loose files, in directory-listing order
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}

	s.logger.Debug().
		Str("root", root).
		Int("fileCount", len(files)).
		Int("ruleCount", len(s.rules)).
		Msg("Scanning source root")

	claimed := make(map[string]bool)
	var matches []Match

	for _, rule := range s.rules {
		for _, name := range files {
			if claimed[name] {
				continue
			}
			ok, err := filepath.Match(rule.Pattern, name)
			if err != nil {
				// Only a malformed pattern reaches here; the built-in
				// table has none
				s.logger.Error().
					Err(err).
					Str("pattern", rule.Pattern).
					Str("file", name).
					Msg("error matching glob pattern")
				continue
			}
			if !ok {
				continue
			}
			s.logger.Debug().
				Str("file", name).
				Str("pattern", rule.Pattern).
				Str("dest", rule.Dest).
				Msg("File matched rule")
			claimed[name] = true
			matches = append(matches, Match{Name: name, Dest: rule.Dest, Rule: rule.Pattern})
		}
	}

	for _, name := range s.literals {
		if claimed[name] {
			continue
		}
		if !containsFile(files, name) {
			// Missing literal files are not an error
			continue
		}
		s.logger.Debug().
			Str("file", name).
			Str("dest", literalDest()).
			Msg("Literal filename present")
		claimed[name] = true
		matches = append(matches, Match{Name: name, Dest: literalDest(), Rule: LiteralRuleName})
	}

	s.logger.Debug().
		Str("root", root).
		Int("matches", len(matches)).
		Msg("Scan complete")

	return matches, nil
}

func containsFile(files []string, name string) bool {
	for _, f := range files {
		if f == name {
			return true
		}
	}
	return false
}
