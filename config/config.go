// Package config provides user preference loading and management for carelog.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs represents the complete carelog user preferences
type Prefs struct {
	Records RecordsPrefs `yaml:"records"`
	Display DisplayPrefs `yaml:"display"`
	Log     LogPrefs     `yaml:"log"`
}

// RecordsPrefs configures record persistence
type RecordsPrefs struct {
	// Path is the record file location (default: .carelog/records.json)
	Path string `yaml:"path"`
}

// DisplayPrefs configures how the list output is rendered
type DisplayPrefs struct {
	// Verbose renders full patient cards in list output instead of names only
	Verbose bool `yaml:"verbose"`
}

// LogPrefs configures logging
type LogPrefs struct {
	// Level is the slog level (debug, info, warn, error)
	Level string `yaml:"level"`
}

// DefaultPrefs returns Prefs with sensible defaults
func DefaultPrefs() *Prefs {
	return &Prefs{
		Records: RecordsPrefs{
			Path: filepath.Join(".carelog", "records.json"),
		},
		Display: DisplayPrefs{
			Verbose: false,
		},
		Log: LogPrefs{
			Level: "info",
		},
	}
}

// Validate checks that the preferences are valid
func (p *Prefs) Validate() error {
	if p.Records.Path == "" {
		return fmt.Errorf("records.path is required")
	}
	switch p.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads preferences from a YAML file
func LoadFromFile(path string) (*Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	prefs := DefaultPrefs()
	if err := yaml.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file: %w", err)
	}

	return prefs, nil
}

// SaveToFile saves preferences to a YAML file
func (p *Prefs) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}

	return nil
}

// Merge merges other into p (other takes precedence for non-zero values)
func (p *Prefs) Merge(other *Prefs) {
	if other == nil {
		return
	}

	if other.Records.Path != "" {
		p.Records.Path = other.Records.Path
	}
	if other.Display.Verbose {
		p.Display.Verbose = true
	}
	if other.Log.Level != "" {
		p.Log.Level = other.Log.Level
	}
}
