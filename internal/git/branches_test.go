package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBranchList(t *testing.T) {
	t.Run("strips the current-branch marker and flags the entry", func(t *testing.T) {
		output := "  feature/login\n* main\n  old-branch"

		branches := ParseBranchList(output, false)
		require.Len(t, branches, 3)

		require.Equal(t, "feature/login", branches[0].Name)
		require.False(t, branches[0].IsCurrent)

		require.Equal(t, "main", branches[1].Name)
		require.True(t, branches[1].IsCurrent)
	})

	t.Run("strips the other-worktree marker", func(t *testing.T) {
		branches := ParseBranchList("+ in-worktree\n* main", false)
		require.Equal(t, "in-worktree", branches[0].Name)
		require.False(t, branches[0].IsCurrent)
	})

	t.Run("skips blank lines", func(t *testing.T) {
		branches := ParseBranchList("\n  main\n\n", false)
		require.Len(t, branches, 1)
	})

	t.Run("preserves git's reported order", func(t *testing.T) {
		branches := ParseBranchList("  zeta\n  alpha\n  mid", false)
		require.Equal(t, "zeta", branches[0].Name)
		require.Equal(t, "alpha", branches[1].Name)
		require.Equal(t, "mid", branches[2].Name)
	})

	t.Run("strips origin prefix from remote listings", func(t *testing.T) {
		output := "  origin/HEAD -> origin/main\n  origin/main\n  origin/feature/x"

		branches := ParseBranchList(output, true)
		require.Len(t, branches, 2)
		require.Equal(t, "main", branches[0].Name)
		require.Equal(t, "feature/x", branches[1].Name)
	})
}
