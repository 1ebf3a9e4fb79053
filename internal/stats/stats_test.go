package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/testhelpers"
)

func TestParseShortlog(t *testing.T) {
	t.Run("parses count and name pairs", func(t *testing.T) {
		output := "    42\tAlice Smith\n     7\tBob\n     1\tC. D. Eve"

		contributors := ParseShortlog(output)
		require.Len(t, contributors, 3)
		require.Equal(t, Contributor{Name: "Alice Smith", Commits: 42}, contributors[0])
		require.Equal(t, Contributor{Name: "Bob", Commits: 7}, contributors[1])
		require.Equal(t, Contributor{Name: "C. D. Eve", Commits: 1}, contributors[2])
	})

	t.Run("preserves git's descending order", func(t *testing.T) {
		contributors := ParseShortlog("  5\tFirst\n  5\tSecond\n  2\tThird")
		require.Equal(t, "First", contributors[0].Name)
		require.Equal(t, "Second", contributors[1].Name)
	})

	t.Run("ignores garbage lines and empty input", func(t *testing.T) {
		require.Empty(t, ParseShortlog(""))
		require.Empty(t, ParseShortlog("no counts here"))
	})
}

func TestCollect(t *testing.T) {
	t.Run("computes counts from a real repository", func(t *testing.T) {
		repo := testhelpers.NewGitRepo(t)
		require.NoError(t, repo.CreateChangeAndCommit("feat: first", "a"))
		require.NoError(t, repo.CreateChangeAndCommit("fix: second", "b"))

		git.SetWorkingDir(repo.Dir)
		defer git.SetWorkingDir("")

		s := Collect(context.Background(), config.Default(), time.Now())

		require.Equal(t, 2, s.TotalCommits)
		require.Equal(t, 2, s.TotalFiles)
		require.Equal(t, 1, s.Contributors)
		require.Equal(t, 2, s.RecentCommits)
		require.Len(t, s.TopContributors, 1)
		require.Equal(t, "Test User", s.TopContributors[0].Name)
		require.Equal(t, 2, s.TopContributors[0].Commits)
	})

	t.Run("degrades to zero values outside a repository", func(t *testing.T) {
		git.SetWorkingDir(t.TempDir())
		defer git.SetWorkingDir("")

		s := Collect(context.Background(), config.Default(), time.Now())

		require.Equal(t, 0, s.TotalCommits)
		require.Equal(t, 0, s.TotalFiles)
		require.Equal(t, 0, s.Contributors)
		require.Equal(t, 0, s.RecentCommits)
		require.Empty(t, s.TopContributors)
	})
}
