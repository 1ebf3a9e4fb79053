package git

import (
	"context"
	"strconv"
	"strings"
)

// logFormat yields one line per commit. The pipe delimiter is not expected in
// hashes, author names, or relative dates; subjects may contain it, which is
// why parsing splits with a bounded field count.
const logFormat = "--pretty=format:%H|%an|%ae|%ar|%s"

const logFieldCount = 5

// CommitRecord is one parsed commit log entry, newest first.
type CommitRecord struct {
	Hash         string
	Author       string
	Email        string
	RelativeDate string
	Subject      string
}

// ShortHash returns the abbreviated commit hash used for display.
func (c CommitRecord) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// GetCommitLog returns the most recent commits, newest first. A count of zero
// or less returns the full history.
func GetCommitLog(ctx context.Context, count int) ([]CommitRecord, error) {
	args := []string{"log"}
	if count > 0 {
		args = append(args, "-"+strconv.Itoa(count))
	}
	args = append(args, logFormat)

	output, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseCommitLog(output), nil
}

// GetCommitSubjects returns commit subjects, newest first, optionally bounded
// by a --since date understood by git.
func GetCommitSubjects(ctx context.Context, since string) ([]string, error) {
	args := []string{"log", "--pretty=format:%s"}
	if since != "" {
		args = append(args, "--since="+since)
	}
	return RunGitCommandLinesWithContext(ctx, args...)
}

// ParseCommitLog parses delimited git log output into commit records. Blank
// lines are skipped; malformed lines (fewer than the expected fields) are
// dropped rather than failing the whole parse.
func ParseCommitLog(output string) []CommitRecord {
	commits := []CommitRecord{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		// SplitN keeps delimiters inside the subject intact.
		parts := strings.SplitN(line, "|", logFieldCount)
		if len(parts) != logFieldCount {
			continue
		}
		commits = append(commits, CommitRecord{
			Hash:         parts[0],
			Author:       parts[1],
			Email:        parts[2],
			RelativeDate: parts[3],
			Subject:      parts[4],
		})
	}
	return commits
}
