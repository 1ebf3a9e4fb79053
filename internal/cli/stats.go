package cli

import (
	"time"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/output"
	"gitflow.dev/gitflow/internal/stats"
)

// newStatsCmd creates the stats command
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show repository statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			splog := output.NewSplog()

			cfg, err := requireRepository(ctx)
			if err != nil {
				return err
			}

			var repoStats *stats.RepoStats
			_ = output.WithSpinner("Analyzing repository...", func() error {
				repoStats = stats.Collect(ctx, cfg, time.Now())
				return nil
			})

			splog.Newline()
			splog.Info("=== Repository Statistics ===")
			splog.Newline()
			splog.Info("Total Commits:     %d", repoStats.TotalCommits)
			splog.Info("Total Files:       %d", repoStats.TotalFiles)
			splog.Info("Contributors:      %d", repoStats.Contributors)
			splog.Info("Recent Activity:   %d commits (last %d days)", repoStats.RecentCommits, cfg.RecentWindowDays)

			if len(repoStats.TopContributors) > 0 {
				splog.Newline()
				splog.Info("--- Top Contributors ---")
				splog.Newline()
				for _, c := range repoStats.TopContributors {
					splog.Info("  %4d commits  %s", c.Commits, c.Name)
				}
			}
			splog.Newline()

			return nil
		},
	}

	return cmd
}
