package cli

import (
	"context"

	"gitflow.dev/gitflow/internal/config"
	gitflowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
)

// requireRepository enforces the repository precondition shared by every
// command except init, and loads the effective configuration for the repo.
func requireRepository(ctx context.Context) (*config.Config, error) {
	if !git.IsRepository(ctx) {
		return nil, gitflowerrors.NewNotARepositoryError("")
	}

	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, err
	}

	return config.Load(repoRoot)
}
