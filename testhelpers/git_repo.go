// Package testhelpers provides git repository fixtures for integration-style
// tests. All helpers shell out to the real git binary in a temp directory.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const textFileName = "test.txt"

// GitRepo represents a git repository created for one test.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new git repository in a test temp directory with
// main as the default branch and a deterministic user identity.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()

	dir := t.TempDir()
	repo := &GitRepo{Dir: dir}

	// Use git -c flags to avoid reading global config and pin the defaults
	// tests rely on.
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		t.Fatalf("failed to configure user.name: %v", err)
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		t.Fatalf("failed to configure user.email: %v", err)
	}

	return repo
}

// RunGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	return cmd.Run()
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChange writes a file change in the repository.
func (r *GitRepo) CreateChange(textValue string, prefix string) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	filePath := filepath.Join(r.Dir, fileName)

	if err := os.WriteFile(filePath, []byte(textValue), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// CreateChangeAndCommit creates a file change and commits it with the given
// message as the subject.
func (r *GitRepo) CreateChangeAndCommit(message string, prefix string) error {
	if err := r.CreateChange(message, prefix); err != nil {
		return err
	}
	if err := r.RunGitCommand("add", "."); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", message)
}

// CreateAndCheckoutBranch creates and checks out a new branch.
func (r *GitRepo) CreateAndCheckoutBranch(branchName string) error {
	return r.RunGitCommand("checkout", "-b", branchName)
}

// CheckoutBranch checks out an existing branch.
func (r *GitRepo) CheckoutBranch(branchName string) error {
	return r.RunGitCommand("checkout", branchName)
}

// ListBranchNames returns the repository's local branch names sorted by git.
func (r *GitRepo) ListBranchNames() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}
