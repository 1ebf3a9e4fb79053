// Package config provides the static gitflow configuration: the conventional
// commit type table, the protected branch set, and execution limits. The
// configuration is built once at process start and passed by reference; it is
// never mutated afterwards.
package config

import (
	"time"
)

// CommitType is one conventional-commit category with its changelog label.
type CommitType struct {
	Key   string
	Label string
}

// Config holds the immutable runtime configuration.
type Config struct {
	// CommitTypes lists the accepted conventional commit types in canonical
	// changelog section order.
	CommitTypes []CommitType

	// OtherLabel is the changelog section for commits that do not match any
	// conventional commit type.
	OtherLabel string

	// ProtectedBranches are never considered for cleanup, regardless of
	// merge status. The currently checked-out branch is protected implicitly.
	ProtectedBranches []string

	// CommandTimeout bounds every git invocation.
	CommandTimeout time.Duration

	// TopContributors is how many contributors the stats command ranks.
	TopContributors int

	// RecentWindowDays is the window for the recent-activity commit count.
	RecentWindowDays int
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CommitTypes: []CommitType{
			{Key: "feat", Label: "New feature"},
			{Key: "fix", Label: "Bug fix"},
			{Key: "docs", Label: "Documentation"},
			{Key: "style", Label: "Code style"},
			{Key: "refactor", Label: "Refactor"},
			{Key: "perf", Label: "Performance"},
			{Key: "test", Label: "Tests"},
			{Key: "chore", Label: "Chore"},
			{Key: "build", Label: "Build"},
			{Key: "ci", Label: "CI/CD"},
		},
		OtherLabel:        "Other Changes",
		ProtectedBranches: []string{"main", "master", "develop"},
		CommandTimeout:    30 * time.Second,
		TopContributors:   5,
		RecentWindowDays:  30,
	}
}

// LookupType returns the commit type for a key, or false if the key is not a
// valid conventional commit type.
func (c *Config) LookupType(key string) (CommitType, bool) {
	for _, t := range c.CommitTypes {
		if t.Key == key {
			return t, true
		}
	}
	return CommitType{}, false
}

// TypeKeys returns the accepted commit type keys in canonical order.
func (c *Config) TypeKeys() []string {
	keys := make([]string, 0, len(c.CommitTypes))
	for _, t := range c.CommitTypes {
		keys = append(keys, t.Key)
	}
	return keys
}

// IsProtected reports whether a branch name is exempt from cleanup.
// Matching is case-sensitive and exact.
func (c *Config) IsProtected(branch string) bool {
	for _, p := range c.ProtectedBranches {
		if branch == p {
			return true
		}
	}
	return false
}
