package config

import (
	"testing"
)

func TestEnvOverrides_JobAddr(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("AADK_JOB_ADDR", "0.0.0.0:6000")

	applyEnvOverrides(cfg)

	if cfg.JobAddr != "0.0.0.0:6000" {
		t.Errorf("expected JobAddr to be '0.0.0.0:6000', got '%s'", cfg.JobAddr)
	}
}

func TestEnvOverrides_DataDir(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("AADK_DATA_DIR", "/var/lib/aadk")

	applyEnvOverrides(cfg)

	if cfg.DataDir != "/var/lib/aadk" {
		t.Errorf("expected DataDir to be '/var/lib/aadk', got '%s'", cfg.DataDir)
	}
}

func TestEnvOverrides_RetentionInts(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("AADK_JOB_HISTORY_RETENTION_DAYS", "7")
	t.Setenv("AADK_JOB_HISTORY_MAX", "0")
	t.Setenv("AADK_OBSERVE_BUNDLE_MAX", " 12 ")

	applyEnvOverrides(cfg)

	if cfg.JobHistoryRetentionDays != 7 {
		t.Errorf("expected JobHistoryRetentionDays to be 7, got %d", cfg.JobHistoryRetentionDays)
	}
	if cfg.JobHistoryMax != 0 {
		t.Errorf("expected JobHistoryMax to be 0, got %d", cfg.JobHistoryMax)
	}
	if cfg.BundleMax != 12 {
		t.Errorf("expected BundleMax to be 12, got %d", cfg.BundleMax)
	}
}

func TestEnvOverrides_MalformedIntKeepsDefault(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("AADK_OBSERVE_BUNDLE_RETENTION_DAYS", "often")
	t.Setenv("AADK_OBSERVE_TMP_RETENTION_HOURS", "-3")

	applyEnvOverrides(cfg)

	if cfg.BundleRetentionDays != DefaultBundleRetentionDays {
		t.Errorf("expected BundleRetentionDays to stay %d, got %d", DefaultBundleRetentionDays, cfg.BundleRetentionDays)
	}
	if cfg.TmpRetentionHours != DefaultTmpRetentionHours {
		t.Errorf("expected TmpRetentionHours to stay %d, got %d", DefaultTmpRetentionHours, cfg.TmpRetentionHours)
	}
}

func TestEnvOverrides_EmptyNoChange(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("AADK_JOB_ADDR", "")
	t.Setenv("AADK_LOG_LEVEL", "")

	applyEnvOverrides(cfg)

	if cfg.JobAddr != DefaultJobAddr {
		t.Errorf("expected JobAddr to remain %q, got %q", DefaultJobAddr, cfg.JobAddr)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected LogLevel to remain %q, got %q", DefaultLogLevel, cfg.LogLevel)
	}
}

func TestEnvOverrides_MultipleVars(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("AADK_OBSERVE_ADDR", "127.0.0.1:7056")
	t.Setenv("AADK_WORKFLOW_ADDR", "127.0.0.1:7057")
	t.Setenv("AADK_LOG_LEVEL", "debug")

	applyEnvOverrides(cfg)

	if cfg.ObserveAddr != "127.0.0.1:7056" {
		t.Errorf("expected ObserveAddr to be '127.0.0.1:7056', got '%s'", cfg.ObserveAddr)
	}
	if cfg.WorkflowAddr != "127.0.0.1:7057" {
		t.Errorf("expected WorkflowAddr to be '127.0.0.1:7057', got '%s'", cfg.WorkflowAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel to be 'debug', got '%s'", cfg.LogLevel)
	}
}
