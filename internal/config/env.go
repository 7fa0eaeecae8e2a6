package config

import (
	"os"
	"strconv"
	"strings"
)

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "AADK_JOB_ADDR",
		apply: func(c *Config, v string) {
			c.JobAddr = v
		},
	},
	{
		envVar: "AADK_TOOLCHAIN_ADDR",
		apply: func(c *Config, v string) {
			c.ToolchainAddr = v
		},
	},
	{
		envVar: "AADK_PROJECT_ADDR",
		apply: func(c *Config, v string) {
			c.ProjectAddr = v
		},
	},
	{
		envVar: "AADK_BUILD_ADDR",
		apply: func(c *Config, v string) {
			c.BuildAddr = v
		},
	},
	{
		envVar: "AADK_TARGETS_ADDR",
		apply: func(c *Config, v string) {
			c.TargetsAddr = v
		},
	},
	{
		envVar: "AADK_OBSERVE_ADDR",
		apply: func(c *Config, v string) {
			c.ObserveAddr = v
		},
	},
	{
		envVar: "AADK_WORKFLOW_ADDR",
		apply: func(c *Config, v string) {
			c.WorkflowAddr = v
		},
	},
	{
		envVar: "AADK_DATA_DIR",
		apply: func(c *Config, v string) {
			c.DataDir = v
		},
	},
	{
		envVar: "AADK_JOB_HISTORY_RETENTION_DAYS",
		apply: func(c *Config, v string) {
			setInt(&c.JobHistoryRetentionDays, v)
		},
	},
	{
		envVar: "AADK_JOB_HISTORY_MAX",
		apply: func(c *Config, v string) {
			setInt(&c.JobHistoryMax, v)
		},
	},
	{
		envVar: "AADK_OBSERVE_BUNDLE_RETENTION_DAYS",
		apply: func(c *Config, v string) {
			setInt(&c.BundleRetentionDays, v)
		},
	},
	{
		envVar: "AADK_OBSERVE_BUNDLE_MAX",
		apply: func(c *Config, v string) {
			setInt(&c.BundleMax, v)
		},
	},
	{
		envVar: "AADK_OBSERVE_TMP_RETENTION_HOURS",
		apply: func(c *Config, v string) {
			setInt(&c.TmpRetentionHours, v)
		},
	},
	{
		envVar: "AADK_LOG_LEVEL",
		apply: func(c *Config, v string) {
			c.LogLevel = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}

// setInt parses a non-negative integer override.
// Malformed or negative values leave the default in place.
func setInt(dst *int, v string) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return
	}
	*dst = n
}
