package git

import (
	"context"
	"fmt"
	"strings"
)

// FileStatus is one entry from porcelain status output.
type FileStatus struct {
	// Staged and Worktree are the raw X and Y status characters.
	Staged   byte
	Worktree byte
	Path     string
}

// Code returns the two-character porcelain status code.
func (f FileStatus) Code() string {
	return string([]byte{f.Staged, f.Worktree})
}

// IsUntracked reports whether the entry is not yet tracked by git.
func (f FileStatus) IsUntracked() bool {
	return f.Staged == '?' && f.Worktree == '?'
}

// Describe returns a human-readable label for the status code.
func (f FileStatus) Describe() string {
	if f.IsUntracked() {
		return "untracked"
	}
	switch {
	case f.Staged == 'R':
		return "renamed"
	case f.Staged == 'A':
		return "added"
	case f.Staged == 'D' || f.Worktree == 'D':
		return "deleted"
	case f.Staged == 'M' || f.Worktree == 'M':
		return "modified"
	}
	return "changed"
}

// GetStatus returns the working tree status.
func GetStatus(ctx context.Context) ([]FileStatus, error) {
	output, err := RunGitCommandRawWithContext(ctx, "status", "--porcelain=v1")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return ParseStatus(output), nil
}

// ParseStatus parses `git status --porcelain=v1` output.
// Format: XY PATH, where X is the staged status and Y the working tree
// status. Rename entries ("R  old -> new") report the new path.
func ParseStatus(output string) []FileStatus {
	files := []FileStatus{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 4 {
			continue
		}

		path := strings.TrimSpace(line[3:])
		if line[0] == 'R' {
			if parts := strings.Split(path, " -> "); len(parts) == 2 {
				path = parts[1]
			}
		}

		files = append(files, FileStatus{
			Staged:   line[0],
			Worktree: line[1],
			Path:     path,
		})
	}
	return files
}
