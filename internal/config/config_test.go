package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	t.Run("accepts all ten conventional commit types", func(t *testing.T) {
		for _, key := range []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore", "build", "ci"} {
			_, ok := cfg.LookupType(key)
			require.True(t, ok, "type %s should be valid", key)
		}
		require.Len(t, cfg.CommitTypes, 10)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		_, ok := cfg.LookupType("wip")
		require.False(t, ok)
	})

	t.Run("type matching is exact", func(t *testing.T) {
		_, ok := cfg.LookupType("Feat")
		require.False(t, ok, "CLI type keywords are lower-case only")
	})

	t.Run("protects main, master, and develop", func(t *testing.T) {
		require.True(t, cfg.IsProtected("main"))
		require.True(t, cfg.IsProtected("master"))
		require.True(t, cfg.IsProtected("develop"))
		require.False(t, cfg.IsProtected("feature/x"))
	})

	t.Run("protection matching is case-sensitive", func(t *testing.T) {
		require.False(t, cfg.IsProtected("Main"))
		require.False(t, cfg.IsProtected("MASTER"))
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing override file yields defaults", func(t *testing.T) {
		repoRoot := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(repoRoot, ".git"), 0750))

		cfg, err := Load(repoRoot)
		require.NoError(t, err)
		require.Equal(t, Default().ProtectedBranches, cfg.ProtectedBranches)
	})

	t.Run("override file extends the protected set", func(t *testing.T) {
		repoRoot := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(repoRoot, ".git"), 0750))

		err := WriteRepoConfig(repoRoot, &RepoConfig{ProtectedBranches: []string{"release", "main"}})
		require.NoError(t, err)

		cfg, err := Load(repoRoot)
		require.NoError(t, err)
		require.True(t, cfg.IsProtected("release"))
		// Duplicates are not added twice.
		require.Equal(t, len(Default().ProtectedBranches)+1, len(cfg.ProtectedBranches))
	})

	t.Run("malformed override file is an error", func(t *testing.T) {
		repoRoot := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(repoRoot, ".git"), 0750))
		require.NoError(t, os.WriteFile(filepath.Join(repoRoot, ".git", ".gitflow_config"), []byte("{not json"), 0644))

		_, err := Load(repoRoot)
		require.Error(t, err)
	})
}
