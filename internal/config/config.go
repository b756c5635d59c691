// Package config loads the optional walcord.yaml file and merges it with
// command-line flags. Config problems are never fatal: a broken or missing
// file falls back to defaults with a warning on stderr.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig is the resolved application configuration.
type AppConfig struct {
	// OutputDir is where generated themes land when --output is not given.
	OutputDir string `yaml:"output_dir"`
	// Extension names stdin-derived theme files, e.g. ".css".
	Extension string `yaml:"extension"`
	Quiet     bool   `yaml:"quiet"`
	// JSONPath overrides the pywal cache location.
	JSONPath string `yaml:"json_path"`
}

// CliFlags holds the command-line flag values, plus markers for the flags
// the user set explicitly so unset flags never mask config values.
type CliFlags struct {
	Output    string
	Extension string
	Quiet     bool
	JSONPath  string

	QuietSet bool
}

// Default returns the built-in configuration: Discord client themes go to
// ~/.config/vesktop/themes.
func Default() *AppConfig {
	cfg := &AppConfig{Extension: ".css"}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.OutputDir = filepath.Join(home, ".config", "vesktop", "themes")
	}
	return cfg
}

// Load reads walcord.yaml from the working directory or the user config
// dir, merged over the defaults.
func Load() *AppConfig {
	cfg := Default()

	path := configPath()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: reading config file %s: %v, using defaults\n", path, err)
		}
		return cfg
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: parsing config file %s: %v, using defaults\n", path, err)
		return cfg
	}

	if fileCfg.OutputDir != "" {
		cfg.OutputDir = fileCfg.OutputDir
	}
	if fileCfg.Extension != "" {
		cfg.Extension = fileCfg.Extension
	}
	if fileCfg.JSONPath != "" {
		cfg.JSONPath = fileCfg.JSONPath
	}
	cfg.Quiet = fileCfg.Quiet
	return cfg
}

// configPath finds walcord.yaml: local directory first, then the XDG user
// config dir.
func configPath() string {
	local := "walcord.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdg := filepath.Join(configHome, "walcord", "walcord.yaml")
	if _, err := os.Stat(xdg); err == nil {
		return xdg
	}
	return ""
}

// MergeWithFlags applies explicitly-set CLI flags over the loaded config.
func MergeWithFlags(cfg *AppConfig, flags CliFlags) *AppConfig {
	merged := *cfg
	if flags.Output != "" {
		merged.OutputDir = flags.Output
	}
	if flags.Extension != "" {
		merged.Extension = flags.Extension
	}
	if flags.JSONPath != "" {
		merged.JSONPath = flags.JSONPath
	}
	if flags.QuietSet {
		merged.Quiet = flags.Quiet
	}
	return &merged
}
