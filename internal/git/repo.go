package git

import (
	"context"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	gitflowerrors "gitflow.dev/gitflow/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens the git repository containing the given path.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// Root returns the work tree root directory.
func (r *Repository) Root() (string, error) {
	wt, err := r.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// IsRepository reports whether the working directory is inside a git work
// tree. Probe failures (including "git not installed") read as false; callers
// treat a negative probe as a precondition failure.
func IsRepository(ctx context.Context) bool {
	_, err := RunGitCommandWithContext(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// GetRepoRoot returns the top-level directory of the repository containing
// the runner's working directory. Resolution goes through go-git, so it
// needs no subprocess.
func GetRepoRoot() (string, error) {
	dir := GetWorkingDir()
	if dir == "" {
		dir = "."
	}

	repo, err := OpenRepository(dir)
	if err != nil {
		return "", gitflowerrors.NewNotARepositoryError("")
	}
	return repo.Root()
}

// GetCurrentBranch returns the name of the checked-out branch, or an empty
// string in detached HEAD state.
func GetCurrentBranch(ctx context.Context) (string, error) {
	branch, err := RunGitCommandWithContext(ctx, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return branch, nil
}

// Init initializes a new git repository in the working directory.
func Init(ctx context.Context) (string, error) {
	return RunGitCommandWithContext(ctx, "init")
}
