// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigFilePathEnvOverride(t *testing.T) {
	// Cannot use t.Parallel() — t.Setenv modifies process environment.
	customPath := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("CASETRACK_CONFIG", customPath)

	if got := ConfigFilePath(); got != customPath {
		t.Errorf("ConfigFilePath() = %q, want %q", got, customPath)
	}
}

func TestConfigFilePathXDGConfigHome(t *testing.T) {
	t.Setenv("CASETRACK_CONFIG", "")
	configDirectory := filepath.Join(t.TempDir(), "xdg-config")
	t.Setenv("XDG_CONFIG_HOME", configDirectory)

	expected := filepath.Join(configDirectory, "casetrack", "config.yaml")
	if got := ConfigFilePath(); got != expected {
		t.Errorf("ConfigFilePath() = %q, want %q", got, expected)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("CASETRACK_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() with missing file: %v", err)
	}
	if config.DataFile != "" {
		t.Errorf("missing config should yield defaults, got %+v", config)
	}
}

func TestLoadConfigReadsDataFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("data_file: /srv/court/cases.json\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CASETRACK_CONFIG", configPath)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig(): %v", err)
	}
	if config.DataFile != "/srv/court/cases.json" {
		t.Errorf("DataFile = %q, want /srv/court/cases.json", config.DataFile)
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("data_file: [unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CASETRACK_CONFIG", configPath)

	if _, err := LoadConfig(); err == nil {
		t.Error("malformed YAML should be an error, not silently ignored")
	}
}

func TestResolveDataPathPrecedence(t *testing.T) {
	t.Setenv("CASETRACK_DATA_FILE", "/env/cases.json")
	config := Config{DataFile: "/config/cases.json"}

	if got := resolveDataPath("/flag/cases.json", config); got != "/flag/cases.json" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := resolveDataPath("", config); got != "/env/cases.json" {
		t.Errorf("env should beat config, got %q", got)
	}

	t.Setenv("CASETRACK_DATA_FILE", "")
	if got := resolveDataPath("", config); got != "/config/cases.json" {
		t.Errorf("config should beat default, got %q", got)
	}

	t.Setenv("XDG_DATA_HOME", "/xdg-data")
	if got := resolveDataPath("", Config{}); got != filepath.Join("/xdg-data", "casetrack", "cases.json") {
		t.Errorf("default should live under XDG_DATA_HOME, got %q", got)
	}
}
