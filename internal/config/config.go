// Package config resolves the environment contract shared by every
// service binary. Environment variables select listen addresses and
// retention tuning; everything else derives from the per-user data
// directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds resolved settings for the daemon and its services.
// It is immutable after creation via FromEnv().
type Config struct {
	// JobAddr is the Job service listen address (host:port)
	JobAddr string

	// ToolchainAddr is the Toolchain service listen address
	ToolchainAddr string

	// ProjectAddr is the Project service listen address
	ProjectAddr string

	// BuildAddr is the Build service listen address
	BuildAddr string

	// TargetsAddr is the Targets service listen address
	TargetsAddr string

	// ObserveAddr is the Observe service listen address
	ObserveAddr string

	// WorkflowAddr is the Workflow service listen address
	WorkflowAddr string

	// DataDir is the per-user state root, $HOME/.local/share/aadk by
	// default with a /tmp/aadk fallback when HOME is unset
	DataDir string

	// JobHistoryRetentionDays bounds the age of persisted finished jobs.
	// 0 disables age-based pruning.
	JobHistoryRetentionDays int

	// JobHistoryMax caps how many finished jobs are persisted.
	// 0 disables the cap.
	JobHistoryMax int

	// BundleRetentionDays bounds the age of exported bundle archives.
	// 0 disables age-based removal.
	BundleRetentionDays int

	// BundleMax caps how many bundle archives are kept.
	// 0 disables the cap.
	BundleMax int

	// TmpRetentionHours bounds the age of bundle staging directories.
	// 0 disables the sweep.
	TmpRetentionHours int

	// LogLevel controls daemon log verbosity (debug, info, warn, error)
	LogLevel string
}

// FromEnv resolves configuration from the environment.
// It applies defaults, then environment overrides, then validates.
func FromEnv() (*Config, error) {
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// StateDir is where services persist their JSON state files.
func (c *Config) StateDir() string {
	return filepath.Join(c.DataDir, "state")
}

// StateFile returns the path of a named state file under StateDir.
func (c *Config) StateFile(name string) string {
	return filepath.Join(c.StateDir(), name)
}

// BundlesDir is where exported archives land.
func (c *Config) BundlesDir() string {
	return filepath.Join(c.DataDir, "bundles")
}

// TmpDir is the staging area for in-progress bundle exports.
func (c *Config) TmpDir() string {
	return filepath.Join(c.DataDir, "tmp")
}

// EnsureDirectories creates the data directories services write to.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.DataDir,
		c.StateDir(),
		c.BundlesDir(),
		c.TmpDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
