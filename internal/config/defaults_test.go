package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig_Addresses(t *testing.T) {
	cfg := DefaultConfig()
	want := map[string]string{
		"JobAddr":       "127.0.0.1:50051",
		"ToolchainAddr": "127.0.0.1:50052",
		"ProjectAddr":   "127.0.0.1:50053",
		"BuildAddr":     "127.0.0.1:50054",
		"TargetsAddr":   "127.0.0.1:50055",
		"ObserveAddr":   "127.0.0.1:50056",
		"WorkflowAddr":  "127.0.0.1:50057",
	}
	got := map[string]string{
		"JobAddr":       cfg.JobAddr,
		"ToolchainAddr": cfg.ToolchainAddr,
		"ProjectAddr":   cfg.ProjectAddr,
		"BuildAddr":     cfg.BuildAddr,
		"TargetsAddr":   cfg.TargetsAddr,
		"ObserveAddr":   cfg.ObserveAddr,
		"WorkflowAddr":  cfg.WorkflowAddr,
	}
	for field, addr := range want {
		if got[field] != addr {
			t.Errorf("expected %s to be %q, got %q", field, addr, got[field])
		}
	}
}

func TestDefaultConfig_Retention(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.JobHistoryRetentionDays != 30 {
		t.Errorf("expected JobHistoryRetentionDays to be 30, got %d", cfg.JobHistoryRetentionDays)
	}
	if cfg.JobHistoryMax != 200 {
		t.Errorf("expected JobHistoryMax to be 200, got %d", cfg.JobHistoryMax)
	}
	if cfg.BundleRetentionDays != 30 {
		t.Errorf("expected BundleRetentionDays to be 30, got %d", cfg.BundleRetentionDays)
	}
	if cfg.BundleMax != 50 {
		t.Errorf("expected BundleMax to be 50, got %d", cfg.BundleMax)
	}
	if cfg.TmpRetentionHours != 24 {
		t.Errorf("expected TmpRetentionHours to be 24, got %d", cfg.TmpRetentionHours)
	}
}

func TestDefaultConfig_LogLevel(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel to be 'info', got %q", cfg.LogLevel)
	}
}

func TestDefaultDataDir_Home(t *testing.T) {
	t.Setenv("HOME", "/home/dev")
	want := filepath.Join("/home/dev", ".local", "share", "aadk")
	if got := DefaultDataDir(); got != want {
		t.Errorf("expected data dir %q, got %q", want, got)
	}
}

func TestDefaultDataDir_NoHome(t *testing.T) {
	t.Setenv("HOME", "")
	if got := DefaultDataDir(); got != "/tmp/aadk" {
		t.Errorf("expected fallback /tmp/aadk, got %q", got)
	}
}
