package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gitflowerrors "gitflow.dev/gitflow/internal/errors"
)

// StageAll stages all changes in the working tree, including untracked files.
func StageAll(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message.
func Commit(ctx context.Context, message string) error {
	_, err := RunGitCommandWithContext(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Push pushes the current branch to its configured upstream.
func Push(ctx context.Context) (string, error) {
	return RunGitCommandWithContext(ctx, "push")
}

// IsMissingUpstream reports whether a push failure was caused by the current
// branch having no configured upstream, which callers treat as a warning
// rather than an error.
func IsMissingUpstream(err error) bool {
	var cmdErr *gitflowerrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	stderr := strings.ToLower(cmdErr.Stderr)
	return strings.Contains(stderr, "no upstream branch") ||
		strings.Contains(stderr, "--set-upstream")
}
