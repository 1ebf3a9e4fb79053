package errors

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsageError(t *testing.T) {
	err := NewUsageError("unknown commit type %q", "wip")
	require.True(t, stderrors.Is(err, ErrUsage))
	require.Equal(t, `unknown commit type "wip"`, err.Error())
}

func TestNotARepositoryError(t *testing.T) {
	err := NewNotARepositoryError("")
	require.True(t, stderrors.Is(err, ErrNotARepository))
	require.Contains(t, err.Error(), "not a git repository")
}

func TestGitCommandError(t *testing.T) {
	t.Run("unwraps its cause", func(t *testing.T) {
		err := NewGitCommandError("git", []string{"push"}, "", "fatal: oops", context.DeadlineExceeded)
		require.True(t, stderrors.Is(err, context.DeadlineExceeded))
	})

	t.Run("Output prefers stderr, then stdout, then the cause", func(t *testing.T) {
		err := NewGitCommandError("git", nil, "out", "fatal: bad", nil)
		require.Equal(t, "fatal: bad", err.Output())

		err = NewGitCommandError("git", nil, "out", "", nil)
		require.Equal(t, "out", err.Output())

		err = NewGitCommandError("git", nil, "", "", context.DeadlineExceeded)
		require.Equal(t, context.DeadlineExceeded.Error(), err.Output())
	})

	t.Run("message includes the command and captured streams", func(t *testing.T) {
		err := NewGitCommandError("git", []string{"branch", "-d", "x"}, "", "error: not fully merged", nil)
		require.Contains(t, err.Error(), "git command failed: git branch -d x")
		require.Contains(t, err.Error(), "not fully merged")
	})
}
