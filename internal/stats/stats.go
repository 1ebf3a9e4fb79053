// Package stats computes repository statistics from separate git
// invocations. Each metric degrades independently: a failing invocation
// yields a zero or empty value instead of failing the whole collection.
package stats

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
)

// Contributor is one ranked contributor entry.
type Contributor struct {
	Name    string
	Commits int
}

// RepoStats holds the collected repository statistics. Computed fresh on
// every invocation, never cached.
type RepoStats struct {
	TotalCommits    int
	TotalFiles      int
	Contributors    int
	RecentCommits   int
	TopContributors []Contributor
}

// shortlogRe matches one `git shortlog -sn` line: count, whitespace, name.
var shortlogRe = regexp.MustCompile(`^\s*(\d+)\s+(.+)$`)

// Collect gathers all statistics for the current repository.
func Collect(ctx context.Context, cfg *config.Config, now time.Time) *RepoStats {
	s := &RepoStats{TopContributors: []Contributor{}}

	if out, err := git.RunGitCommandWithContext(ctx, "rev-list", "--count", "HEAD"); err == nil {
		if n, err := strconv.Atoi(out); err == nil {
			s.TotalCommits = n
		}
	}

	if out, err := git.RunGitCommandWithContext(ctx, "shortlog", "-sn", "--all"); err == nil {
		contributors := ParseShortlog(out)
		s.Contributors = len(contributors)
		if len(contributors) > cfg.TopContributors {
			contributors = contributors[:cfg.TopContributors]
		}
		s.TopContributors = contributors
	}

	if out, err := git.RunGitCommandWithContext(ctx, "ls-files"); err == nil && out != "" {
		s.TotalFiles = len(strings.Split(out, "\n"))
	}

	since := now.AddDate(0, 0, -cfg.RecentWindowDays).Format("2006-01-02")
	if out, err := git.RunGitCommandWithContext(ctx, "rev-list", "--count", "--since="+since, "HEAD"); err == nil {
		if n, err := strconv.Atoi(out); err == nil {
			s.RecentCommits = n
		}
	}

	return s
}

// ParseShortlog parses `git shortlog -sn` output into ranked contributors.
// git already orders by commit count descending with first-seen tiebreak;
// that order is preserved.
func ParseShortlog(output string) []Contributor {
	contributors := []Contributor{}
	for _, line := range strings.Split(output, "\n") {
		m := shortlogRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		count, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		contributors = append(contributors, Contributor{
			Name:    strings.TrimSpace(m[2]),
			Commits: count,
		})
	}
	return contributors
}
