package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/output"
)

// newBranchesCmd creates the branches command
func newBranchesCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "branches",
		Short: "List branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			splog := output.NewSplog()

			if _, err := requireRepository(ctx); err != nil {
				return err
			}

			branches, err := git.GetBranches(ctx, remote)
			if err != nil {
				return err
			}

			if len(branches) == 0 {
				splog.Info("No branches found")
				return nil
			}

			title := "Local Branches"
			if remote {
				title = "Remote Branches"
			}

			splog.Newline()
			splog.Info("=== %s ===", title)
			splog.Newline()
			for _, branch := range branches {
				marker := " "
				if branch.IsCurrent {
					marker = ">"
				}
				splog.Info("  %s %s", marker, output.ColorBranchName(branch.Name, branch.IsCurrent))
			}
			splog.Newline()

			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Show remote branches")

	return cmd
}
