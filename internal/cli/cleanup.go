package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/cleanup"
	"gitflow.dev/gitflow/internal/output"
)

// newCleanupCmd creates the cleanup command
func newCleanupCmd() *cobra.Command {
	var (
		dryRun bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete local branches already merged into the current branch",
		Long: `Delete local branches already merged into the current branch.

Protected branches (main, master, develop, and the currently checked-out
branch) are never candidates. Without --force nothing is deleted; the
candidate list is only previewed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			splog := output.NewSplog()

			cfg, err := requireRepository(ctx)
			if err != nil {
				return err
			}

			// --dry-run always wins; without --force the command previews too.
			preview := dryRun || !force

			if preview {
				var candidates []string
				err := output.WithSpinner("Finding merged branches...", func() error {
					var runErr error
					candidates, runErr = cleanup.Run(ctx, cfg, true)
					return runErr
				})
				if err != nil {
					return err
				}

				if len(candidates) == 0 {
					splog.Ok("No branches to clean up")
					return nil
				}

				splog.Info("Branches that can be deleted:")
				splog.Newline()
				for _, name := range candidates {
					splog.Info("  - %s", name)
				}
				splog.Newline()
				splog.Info("Total: %d branch(es)", len(candidates))
				splog.Tip("Run with --force to actually delete")
				return nil
			}

			deleted, err := cleanup.Run(ctx, cfg, false)
			if err != nil {
				return err
			}

			if len(deleted) == 0 {
				splog.Ok("No branches to clean up")
				return nil
			}

			for _, name := range deleted {
				splog.Info("  deleted %s", name)
			}
			splog.Ok("Deleted %d branch(es)", len(deleted))

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without deleting")
	cmd.Flags().BoolVar(&force, "force", false, "Actually delete branches")

	return cmd
}
