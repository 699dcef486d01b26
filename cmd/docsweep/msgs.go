package docsweep

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Sweep stale documentation into an archive tree"
	MsgRootLong  = `docsweep reorganizes a project documentation directory. It ensures a fixed
folder layout (an archive/ subtree plus organizational folders) and moves
stale docs into the archive by filename rules: fix notes, analyses and old
reviews each have their own destination.`

	MsgRunShort = "Run a sweep over the documentation root"
	MsgRunLong  = `Run ensures the folder layout exists, then moves every loose file matching
the built-in filename rules into the archive subtree. A handful of known
stale filenames are moved unconditionally. Files are moved, not copied;
re-running is always safe.`
	MsgRunExample = `  docsweep run
  docsweep run --source-root ./docs
  docsweep run --dry-run`

	MsgInitShort = "Create the folder layout without moving anything"
	MsgInitLong  = `Init idempotently creates the archive subtree (fixes, analysis, old-reviews)
and the organizational folders (integrations, development, deployment,
getting-started) under the documentation root.`

	MsgStatusShort = "List files a sweep would move"
	MsgStatusLong  = `Status scans the documentation root and reports which files the rules would
move, and where, without touching anything.`

	MsgGenconfigShort = "Print the default configuration as TOML"
	MsgGenconfigLong  = `Genconfig prints the built-in configuration. Redirect it to create a config
file: docsweep genconfig > .docsweep.toml`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `Generate a completion script for your shell and source it, e.g.:
  source <(docsweep completion bash)`

	// Status messages
	MsgDryRunNotice   = "\nDRY RUN MODE - No changes were made"
	MsgFileMoved      = "Moved %s to %s/\n"
	MsgFileMovedAs    = "Moved %s to %s/ (as %s)\n"
	MsgFileSkipped    = "Skipped %s (already exists in %s/)\n"
	MsgWouldMove      = "Would move %s to %s/\n"
	MsgNothingToMove  = "Nothing to move."
	MsgDirCreated     = "Created %s/\n"
	MsgLayoutComplete = "Layout already complete."
	MsgTotalMoved     = "Total moved: %d files"
	MsgArchiveRoot    = "Archive root: %s"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrResolve    = "failed to resolve documentation root: %w"
	MsgErrSweep      = "sweep failed: %w"
	MsgErrLayout     = "failed to create folder layout: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Preview changes without executing them"
	MsgFlagSourceRoot = "Documentation root to sweep (default: configured root or working directory)"
)

// MsgUsageTemplate is cobra's usage template with bold section headers
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold $group.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
