// Package cli wires the gitflow command surface together with cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitflow",
		Short: "Gitflow is a smart git workflow assistant",
		Long: `Gitflow is a smart git workflow assistant: conventional commits,
branch management, repository statistics, and changelog generation.`,
		Example: `  gitflow commit feat "Add user login"      # Conventional commit
  gitflow log                               # Recent commits
  gitflow stats                             # Repository statistics
  gitflow branches                          # List branches
  gitflow cleanup --dry-run                 # Preview branch cleanup
  gitflow changelog --since 7.days          # Generate changelog`,
		SilenceUsage: true,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newBranchesCmd())
	rootCmd.AddCommand(newCleanupCmd())
	rootCmd.AddCommand(newChangelogCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}
