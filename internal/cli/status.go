package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/output"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show an enhanced git status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			splog := output.NewSplog()

			if _, err := requireRepository(ctx); err != nil {
				return err
			}

			currentBranch, err := git.GetCurrentBranch(ctx)
			if err != nil {
				return err
			}

			splog.Newline()
			splog.Info("=== On branch: %s ===", output.ColorBranchName(currentBranch, true))
			splog.Newline()

			files, err := git.GetStatus(ctx)
			if err != nil {
				return err
			}

			if len(files) == 0 {
				splog.Ok("Working tree clean")
				splog.Newline()
			} else {
				splog.Info("Changes:")
				splog.Newline()
				for _, f := range files {
					splog.Info("  %s %s  %s", f.Code(), f.Path, output.ColorDim("("+f.Describe()+")"))
				}
				splog.Newline()
			}

			commits, err := git.GetCommitLog(ctx, 1)
			if err == nil && len(commits) > 0 {
				commit := commits[0]
				splog.Info("Last commit: %s - %s", output.ColorHash(commit.ShortHash()), commit.Subject)
				splog.Info("   %s", output.ColorDim(commit.Author+" - "+commit.RelativeDate))
				splog.Newline()
			}

			return nil
		},
	}

	return cmd
}
