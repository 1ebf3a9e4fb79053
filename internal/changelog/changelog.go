// Package changelog groups conventional commits by type and renders the
// result as Markdown.
package changelog

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
)

// conventionalRe matches `type: subject` and `type(scope): subject` with
// exactly one non-nested single-token scope. Multi-word scopes and nested
// parentheses do not match and land in the catch-all bucket.
var conventionalRe = regexp.MustCompile(`^(\w+)(?:\([\w-]+\))?:\s*(.+)$`)

// Entry is one classified commit subject.
type Entry struct {
	// Label is the changelog section the commit belongs to.
	Label string
	// Text is the display text: the subject with its type prefix stripped,
	// or the full original subject for catch-all commits.
	Text string
}

// Classify assigns one commit subject to its changelog section. The type
// keyword is matched case-insensitively; unrecognized types and
// non-conventional subjects keep their full text under the catch-all label.
func Classify(subject string, cfg *config.Config) Entry {
	if m := conventionalRe.FindStringSubmatch(subject); m != nil {
		if t, ok := cfg.LookupType(strings.ToLower(m[1])); ok {
			return Entry{Label: t.Label, Text: m[2]}
		}
	}
	return Entry{Label: cfg.OtherLabel, Text: subject}
}

// Options controls changelog generation.
type Options struct {
	// Since is the raw --since value; see ParseSince for the grammar.
	Since string
}

// Generate builds the changelog document for commits at or after the --since
// boundary. Commit order from git (newest first) is preserved within each
// section.
func Generate(ctx context.Context, opts Options, cfg *config.Config, now time.Time) (string, error) {
	since, err := ParseSince(opts.Since, now)
	if err != nil {
		return "", err
	}

	subjects, err := git.GetCommitSubjects(ctx, since)
	if err != nil {
		return "", err
	}

	return Render(subjects, cfg, now), nil
}

// Render partitions subjects into type buckets and renders the Markdown
// document. Every subject lands in exactly one bucket; empty buckets produce
// no section.
func Render(subjects []string, cfg *config.Config, now time.Time) string {
	grouped := make(map[string][]string)
	for _, subject := range subjects {
		if subject == "" {
			continue
		}
		entry := Classify(subject, cfg)
		grouped[entry.Label] = append(grouped[entry.Label], entry.Text)
	}

	var b strings.Builder
	b.WriteString("# Changelog\n")
	fmt.Fprintf(&b, "\nGenerated: %s\n", now.Format("2006-01-02 15:04"))

	labels := make([]string, 0, len(cfg.CommitTypes)+1)
	for _, t := range cfg.CommitTypes {
		labels = append(labels, t.Label)
	}
	labels = append(labels, cfg.OtherLabel)

	for _, label := range labels {
		entries := grouped[label]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", label)
		for _, text := range entries {
			fmt.Fprintf(&b, "- %s\n", text)
		}
	}

	return b.String()
}

// WriteFile writes the changelog document to the given path, overwriting any
// existing file.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write changelog: %w", err)
	}
	return nil
}
