package git

import (
	"context"
	"fmt"
	"strings"
)

// Branch is one entry from a branch listing.
type Branch struct {
	Name      string
	IsCurrent bool
}

// GetBranches lists local or remote branches in the order git reports them.
func GetBranches(ctx context.Context, remote bool) ([]Branch, error) {
	args := []string{"branch"}
	if remote {
		args = append(args, "-r")
	}
	output, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return ParseBranchList(output, remote), nil
}

// ParseBranchList parses `git branch` output: one name per line, the current
// branch marked with "* " and branches checked out in other worktrees with
// "+ ". Remote listings have their origin/ prefix stripped and the symbolic
// HEAD pointer line dropped.
func ParseBranchList(output string, remote bool) []Branch {
	branches := []Branch{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		current := strings.HasPrefix(line, "* ")
		name := strings.TrimSpace(strings.TrimLeft(line, "*+ "))
		if name == "" {
			continue
		}
		if remote {
			if strings.Contains(name, " -> ") {
				continue
			}
			name = strings.TrimPrefix(name, "origin/")
		}
		branches = append(branches, Branch{Name: name, IsCurrent: current})
	}
	return branches
}

// GetMergedBranches returns the names of branches already merged into the
// current branch, in the order git reports them. The current branch itself is
// included (marked in git's output) so callers can exclude it explicitly.
func GetMergedBranches(ctx context.Context) ([]string, error) {
	output, err := RunGitCommandWithContext(ctx, "branch", "--merged")
	if err != nil {
		return nil, fmt.Errorf("failed to list merged branches: %w", err)
	}

	names := []string{}
	for _, b := range ParseBranchList(output, false) {
		names = append(names, b.Name)
	}
	return names, nil
}

// DeleteBranch deletes a local branch. The -d form refuses branches git does
// not consider fully merged, which is the safety net cleanup relies on.
func DeleteBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "branch", "-d", branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}
