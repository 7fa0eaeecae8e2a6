package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultJobAddr       = "127.0.0.1:50051"
	DefaultToolchainAddr = "127.0.0.1:50052"
	DefaultProjectAddr   = "127.0.0.1:50053"
	DefaultBuildAddr     = "127.0.0.1:50054"
	DefaultTargetsAddr   = "127.0.0.1:50055"
	DefaultObserveAddr   = "127.0.0.1:50056"
	DefaultWorkflowAddr  = "127.0.0.1:50057"

	DefaultJobHistoryRetentionDays = 30
	DefaultJobHistoryMax           = 200
	DefaultBundleRetentionDays     = 30
	DefaultBundleMax               = 50
	DefaultTmpRetentionHours       = 24

	DefaultLogLevel = "info"
)

// DefaultDataDir resolves the per-user data directory.
// Falls back to /tmp/aadk when HOME is unset.
func DefaultDataDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "share", "aadk")
	}
	return "/tmp/aadk"
}

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		JobAddr:       DefaultJobAddr,
		ToolchainAddr: DefaultToolchainAddr,
		ProjectAddr:   DefaultProjectAddr,
		BuildAddr:     DefaultBuildAddr,
		TargetsAddr:   DefaultTargetsAddr,
		ObserveAddr:   DefaultObserveAddr,
		WorkflowAddr:  DefaultWorkflowAddr,

		DataDir: DefaultDataDir(),

		JobHistoryRetentionDays: DefaultJobHistoryRetentionDays,
		JobHistoryMax:           DefaultJobHistoryMax,
		BundleRetentionDays:     DefaultBundleRetentionDays,
		BundleMax:               DefaultBundleMax,
		TmpRetentionHours:       DefaultTmpRetentionHours,

		LogLevel: DefaultLogLevel,
	}
}
