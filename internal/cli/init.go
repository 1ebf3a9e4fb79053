package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/output"
)

// newInitCmd creates the init command. init is the one command that does not
// require an existing repository.
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a git repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			splog := output.NewSplog()

			if _, err := git.Init(ctx); err != nil {
				return err
			}

			splog.Ok("Initialized git repository")
			return nil
		},
	}

	return cmd
}
