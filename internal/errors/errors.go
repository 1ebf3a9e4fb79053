// Package errors provides sentinel errors and custom error types for the gitflow application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git work tree
	ErrNotARepository = errors.New("not a git repository")

	// ErrUsage indicates a malformed command-line invocation
	ErrUsage = errors.New("usage error")
)

// UsageError represents a malformed CLI invocation, detected before any
// git command runs.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Is returns true if the target error is ErrUsage
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// NewUsageError creates a new UsageError
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// NotARepositoryError reports that a command requiring a repository was run
// outside of one.
type NotARepositoryError struct {
	Dir string
}

func (e *NotARepositoryError) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("%s is not a git repository", e.Dir)
	}
	return "not a git repository (run 'gitflow init' or 'git init' to initialize)"
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

// NewNotARepositoryError creates a new NotARepositoryError
func NewNotARepositoryError(dir string) *NotARepositoryError {
	return &NotARepositoryError{Dir: dir}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %s", strings.Join(e.Args, " "))
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Output returns the most useful captured text for user-facing reporting:
// stderr when present, otherwise stdout, otherwise the wrapped cause.
func (e *GitCommandError) Output() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	if s := strings.TrimSpace(e.Stdout); s != "" {
		return s
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
