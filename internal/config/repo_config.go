package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RepoConfig is the optional per-repository override file, stored as JSON at
// .git/.gitflow_config. Absent file means defaults.
type RepoConfig struct {
	ProtectedBranches []string `json:"protectedBranches,omitempty"`
}

// GetRepoConfig reads the repository configuration override file.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ".git", ".gitflow_config")

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// WriteRepoConfig writes the repository configuration override file.
func WriteRepoConfig(repoRoot string, config *RepoConfig) error {
	configPath := filepath.Join(repoRoot, ".git", ".gitflow_config")

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repo config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}

	return nil
}

// Load returns the default configuration merged with any per-repository
// overrides. Overrides extend the protected branch list; they never shrink it.
func Load(repoRoot string) (*Config, error) {
	cfg := Default()

	if repoRoot == "" {
		return cfg, nil
	}

	repoConfig, err := GetRepoConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	for _, branch := range repoConfig.ProtectedBranches {
		if !cfg.IsProtected(branch) {
			cfg.ProtectedBranches = append(cfg.ProtectedBranches, branch)
		}
	}

	return cfg, nil
}
