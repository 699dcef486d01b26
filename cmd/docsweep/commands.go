package docsweep

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/voxelpromo/docsweep/pkg/config"
	"github.com/voxelpromo/docsweep/pkg/paths"
	"github.com/voxelpromo/docsweep/pkg/style"
	"github.com/voxelpromo/docsweep/pkg/sweep"
	"github.com/voxelpromo/docsweep/pkg/types"
)

// initRun resolves the documentation root and loads configuration for a
// command invocation. The root is resolved twice: once without config to
// find where the config file lives, then again so a configured source_root
// can take effect when no flag or env var overrides it.
func initRun(cmd *cobra.Command) (*paths.Paths, *config.Config, error) {
	flagRoot, _ := cmd.Root().PersistentFlags().GetString("source-root")

	candidate, err := paths.Resolve(flagRoot, "")
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrResolve, err)
	}

	cfg, err := config.Load(candidate.SourceRoot())
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	p, err := paths.Resolve(flagRoot, cfg.Archive.SourceRoot)
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrResolve, err)
	}

	return p, cfg, nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := initRun(cmd)
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			log.Info().
				Str("source_root", p.SourceRoot()).
				Bool("dry_run", dryRun).
				Msg("Sweeping documentation root")

			result, err := sweep.Run(sweep.Options{
				Paths:      p,
				OnConflict: cfg.ConflictPolicy(),
				DryRun:     dryRun,
			})
			if err != nil {
				return fmt.Errorf(MsgErrSweep, err)
			}

			printSweepResult(cmd, result)
			return nil
		},
	}
}

func printSweepResult(cmd *cobra.Command, result *types.SweepResult) {
	out := cmd.OutOrStdout()

	for _, moved := range result.Moved {
		switch {
		case result.DryRun:
			fmt.Fprintf(out, MsgWouldMove, moved.Name, moved.Dest)
		case moved.DestName != moved.Name:
			fmt.Fprintf(out, MsgFileMovedAs, moved.Name, moved.Dest, moved.DestName)
		default:
			fmt.Fprintf(out, MsgFileMoved, moved.Name, moved.Dest)
		}
	}
	for _, skipped := range result.Skipped {
		fmt.Fprint(out, style.GetStyle("Warning").Render(
			fmt.Sprintf(MsgFileSkipped, skipped.Name, skipped.Dest)))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, style.GetStyle("Summary").Render(
		fmt.Sprintf(MsgTotalMoved, result.MovedCount())))
	fmt.Fprintln(out, style.GetStyle("Path").Render(
		fmt.Sprintf(MsgArchiveRoot, result.ArchiveRoot)))

	if result.DryRun {
		fmt.Fprintln(out, MsgDryRunNotice)
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := initRun(cmd)
			if err != nil {
				return err
			}

			fs := sweep.DefaultFS()
			if err := p.Validate(fs); err != nil {
				return err
			}

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			created, err := sweep.EnsureLayout(fs, p, dryRun)
			if err != nil {
				return fmt.Errorf(MsgErrLayout, err)
			}

			out := cmd.OutOrStdout()
			if len(created) == 0 {
				fmt.Fprintln(out, MsgLayoutComplete)
			}
			for _, dir := range created {
				fmt.Fprintf(out, MsgDirCreated, dir)
			}
			if dryRun {
				fmt.Fprintln(out, MsgDryRunNotice)
			}
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := initRun(cmd)
			if err != nil {
				return err
			}

			// Status is a dry sweep: same resolution, no changes
			result, err := sweep.Run(sweep.Options{
				Paths:      p,
				OnConflict: cfg.ConflictPolicy(),
				DryRun:     true,
			})
			if err != nil {
				return fmt.Errorf(MsgErrSweep, err)
			}

			out := cmd.OutOrStdout()
			if result.MovedCount() == 0 {
				fmt.Fprintln(out, MsgNothingToMove)
				return nil
			}
			for _, moved := range result.Moved {
				fmt.Fprintf(out, MsgWouldMove, moved.Name, moved.Dest)
			}
			return nil
		},
	}
}

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenconfigShort,
		Long:    MsgGenconfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := toml.Marshal(config.Default())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
