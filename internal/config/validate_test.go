package config

import (
	"strings"
	"testing"
)

func TestValidation_Defaults(t *testing.T) {
	if err := validateConfig(DefaultConfig()); err != nil {
		t.Fatalf("expected default config to validate, got: %v", err)
	}
}

func TestValidation_BadAddress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ObserveAddr = "not-an-address"

	err := validateConfig(cfg)
	if err == nil {
		t.Fatal("expected error for malformed address")
	}
	if !strings.Contains(err.Error(), "observe_addr") {
		t.Errorf("expected error to name observe_addr, got: %v", err)
	}
}

func TestValidation_RelativeDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "relative/aadk"

	err := validateConfig(cfg)
	if err == nil {
		t.Fatal("expected error for relative data dir")
	}
	if !strings.Contains(err.Error(), "data_dir") {
		t.Errorf("expected error to name data_dir, got: %v", err)
	}
}

func TestValidation_BadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "chatty"

	err := validateConfig(cfg)
	if err == nil {
		t.Fatal("expected error for unknown log level")
	}
	if !strings.Contains(err.Error(), "log_level") {
		t.Errorf("expected error to name log_level, got: %v", err)
	}
}

func TestValidation_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.JobAddr = "bad"
	cfg.LogLevel = "loud"

	err := validateConfig(cfg)
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "job_addr") || !strings.Contains(msg, "log_level") {
		t.Errorf("expected both failures reported, got: %v", err)
	}
}
