// Package cleanup identifies merged branches that are safe to delete and
// performs the deletion batch.
package cleanup

import (
	"context"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
)

// Candidates returns branches merged into the current branch that are safe
// deletion candidates: the protected set and the currently checked-out
// branch are excluded by case-sensitive exact match. Order is the order git
// reported the branches in.
func Candidates(ctx context.Context, cfg *config.Config) ([]string, error) {
	merged, err := git.GetMergedBranches(ctx)
	if err != nil {
		return nil, err
	}

	current, err := git.GetCurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	candidates := []string{}
	for _, name := range merged {
		if cfg.IsProtected(name) || name == current {
			continue
		}
		candidates = append(candidates, name)
	}
	return candidates, nil
}

// Run performs the cleanup. With dryRun the candidate list is returned and
// nothing is mutated. Otherwise each candidate is deleted individually;
// a branch whose deletion fails (deleted concurrently, or no longer fully
// merged) is skipped and the batch continues. The returned list contains
// only the branches actually deleted.
func Run(ctx context.Context, cfg *config.Config, dryRun bool) ([]string, error) {
	candidates, err := Candidates(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if dryRun {
		return candidates, nil
	}

	deleted := []string{}
	for _, name := range candidates {
		if err := git.DeleteBranch(ctx, name); err != nil {
			continue
		}
		deleted = append(deleted, name)
	}
	return deleted, nil
}
