package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/config"
	gitflowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/output"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var (
		scope  string
		noPush bool
	)

	cmd := &cobra.Command{
		Use:   "commit <type> <message>",
		Short: "Stage everything and create a conventional commit",
		Long: `Stage everything and create a conventional commit.

The message is built as "type: message", or "type(scope): message" when
--scope is given. Unless --no-push is set, the commit is pushed to the
current branch's configured upstream; a missing upstream is a warning,
not an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			splog := output.NewSplog()

			commitType := args[0]
			subject := args[1]

			// The commit type set is fixed, so usage validation runs before
			// any git call.
			cfg := config.Default()
			typeInfo, ok := cfg.LookupType(commitType)
			if !ok {
				return gitflowerrors.NewUsageError("unknown commit type %q (valid types: %s)",
					commitType, strings.Join(cfg.TypeKeys(), ", "))
			}

			if _, err := requireRepository(ctx); err != nil {
				return err
			}

			message := commitType + ": " + subject
			if scope != "" {
				message = fmt.Sprintf("%s(%s): %s", commitType, scope, subject)
			}

			splog.Info("Staging changes...")
			if err := git.StageAll(ctx); err != nil {
				return err
			}

			splog.Info("Committing: %s", message)
			if err := git.Commit(ctx, message); err != nil {
				return err
			}
			splog.Ok("Committed: %s", typeInfo.Label)

			if noPush {
				return nil
			}

			splog.Info("Pushing to remote...")
			if _, err := git.Push(ctx); err != nil {
				// The commit already succeeded; report the partial result
				// instead of failing the command.
				if git.IsMissingUpstream(err) {
					splog.Warn("No upstream configured for the current branch")
				} else {
					splog.Warn("Push failed: %s", gitOutput(err))
				}
				splog.Tip("Run 'git push' manually if needed")
				return nil
			}
			splog.Ok("Pushed to remote")

			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "", "Commit scope (optional)")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Don't push after commit")

	return cmd
}

// gitOutput extracts the captured git output from an error for user-facing
// messages, falling back to the plain error text.
func gitOutput(err error) string {
	var cmdErr *gitflowerrors.GitCommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Output()
	}
	return err.Error()
}
