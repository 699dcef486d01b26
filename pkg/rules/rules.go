package rules

import (
	"github.com/voxelpromo/docsweep/pkg/paths"
	"github.com/voxelpromo/docsweep/pkg/types"
)

// LiteralRuleName is the rule name reported for literal filename moves
const LiteralRuleName = "literal"

// DefaultRules returns the glob rules, in application order. Order matters:
// a file claimed by an earlier rule is never seen by a later one.
func DefaultRules() []types.Rule {
	return []types.Rule{
		{Pattern: "*_FIX.md", Dest: paths.FixesDir},
		{Pattern: "*_FIXES.md", Dest: paths.FixesDir},
		{Pattern: "*QUICK_FIX.md", Dest: paths.FixesDir},
		{Pattern: "*_ANALYSIS.md", Dest: paths.AnalysisDir},
		{Pattern: "*_ISSUE.md", Dest: paths.AnalysisDir},
		{Pattern: "PROJECT_REVIEW*.md", Dest: paths.OldReviewsDir},
		{Pattern: "IRIS*.md", Dest: paths.OldReviewsDir},
		{Pattern: "*_IMPROVEMENTS_IMPLEMENTED.md", Dest: paths.OldReviewsDir},
	}
}

// literalDest is where every literal filename goes
func literalDest() string {
	return paths.OldReviewsDir
}

// LiteralFiles returns the exact filenames moved unconditionally to the
// old-reviews folder. Absent files are silently skipped.
func LiteralFiles() []string {
	return []string{
		"VERIFICATION_SUMMARY.md",
		"SYSTEM_STATUS.md",
		"OFFERS_DELETION_VERIFICATION.md",
		"NEXT_STEPS.md",
		"PROJECT_CHECKLIST.md",
		"COVERAGE_IMPROVEMENT_PLAN.md",
		"ROADMAP_TESTING.md",
	}
}
