package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/output"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Show recent commits",
		Aliases: []string{"l"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			splog := output.NewSplog()

			if _, err := requireRepository(ctx); err != nil {
				return err
			}

			commits, err := git.GetCommitLog(ctx, count)
			if err != nil {
				return err
			}

			if len(commits) == 0 {
				splog.Info("No commits found")
				return nil
			}

			splog.Newline()
			splog.Info("=== Recent Commits ===")
			splog.Newline()
			for _, commit := range commits {
				splog.Info("%s  %s", output.ColorHash(commit.ShortHash()), commit.Subject)
				splog.Info("         %s", output.ColorDim(commit.Author+" - "+commit.RelativeDate))
				splog.Newline()
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of commits")

	return cmd
}
