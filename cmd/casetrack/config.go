// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional casetrack configuration file. It lives at
// <config dir>/casetrack/config.yaml and currently carries only the
// data file location; flags override it.
type Config struct {
	// DataFile is the path of the case data file. Empty means the
	// default under the user data directory.
	DataFile string `yaml:"data_file"`
}

// ConfigFilePath returns the path of the config file. Resolution order:
//
//  1. CASETRACK_CONFIG environment variable (tests, scripts)
//  2. $XDG_CONFIG_HOME/casetrack/config.yaml
//  3. ~/.config/casetrack/config.yaml
func ConfigFilePath() string {
	if envPath := os.Getenv("CASETRACK_CONFIG"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "casetrack-config.yaml")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}

	return filepath.Join(configDirectory, "casetrack", "config.yaml")
}

// LoadConfig reads the config file. A missing file is not an error:
// the zero Config selects all defaults.
func LoadConfig() (Config, error) {
	var config Config

	data, err := os.ReadFile(ConfigFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing %s: %w", ConfigFilePath(), err)
	}
	return config, nil
}

// defaultDataPath returns the default case data file location:
// $XDG_DATA_HOME/casetrack/cases.json, falling back to
// ~/.local/share/casetrack/cases.json.
func defaultDataPath() string {
	dataDirectory := os.Getenv("XDG_DATA_HOME")
	if dataDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("/tmp", "casetrack-cases.json")
		}
		dataDirectory = filepath.Join(homeDirectory, ".local", "share")
	}
	return filepath.Join(dataDirectory, "casetrack", "cases.json")
}

// resolveDataPath picks the case data file. Precedence: the --data
// flag, then CASETRACK_DATA_FILE, then the config file, then the
// default under the user data directory.
func resolveDataPath(flagValue string, config Config) string {
	if flagValue != "" {
		return flagValue
	}
	if envPath := os.Getenv("CASETRACK_DATA_FILE"); envPath != "" {
		return envPath
	}
	if config.DataFile != "" {
		return config.DataFile
	}
	return defaultDataPath()
}
