// Package config loads focustally settings from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds every user-tunable setting.
type Config struct {
	InputFile  string        `yaml:"input_file"`
	OutputFile string        `yaml:"output_file"`
	TailLines  int           `yaml:"tail_lines"`
	Hours      bool          `yaml:"hours"`
	Columns    ColumnsConfig `yaml:"columns"`
	History    HistoryConfig `yaml:"history"`
	Log        LogConfig     `yaml:"log"`
}

// ColumnsConfig names the export columns.
type ColumnsConfig struct {
	StartDate string `yaml:"start_date"`
	Duration  string `yaml:"duration"`
	Task      string `yaml:"task"`
	State     string `yaml:"state"`
}

// HistoryConfig controls the optional run history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// LogConfig sets the zap level. Empty disables logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		InputFile:  "BeFocused.csv",
		OutputFile: "output.csv",
		TailLines:  500,
		Columns: ColumnsConfig{
			StartDate: "Start date",
			Duration:  "Duration",
			Task:      "Assigned task",
			State:     "Task state",
		},
		History: HistoryConfig{
			DBPath: defaultDBPath(),
		},
	}
}

// DefaultPath is $FOCUSTALLY_CONFIG, else ~/.focustally/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("FOCUSTALLY_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".focustally", "config.yaml")
}

// Load reads path (a missing file yields defaults), then applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.TailLines <= 0 {
		return fmt.Errorf("tail_lines must be a positive integer, got %d", c.TailLines)
	}
	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("history.db_path is required when history is enabled")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FOCUSTALLY_INPUT"); v != "" {
		c.InputFile = v
	}
	if v := os.Getenv("FOCUSTALLY_OUTPUT"); v != "" {
		c.OutputFile = v
	}
	if v := os.Getenv("FOCUSTALLY_TAIL_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TailLines = n
		}
	}
	if v := os.Getenv("FOCUSTALLY_HOURS"); v != "" {
		c.Hours, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FOCUSTALLY_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("FOCUSTALLY_HISTORY_ENABLED"); v != "" {
		c.History.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FOCUSTALLY_DB"); v != "" {
		c.History.DBPath = v
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".focustally", "history.db")
}
