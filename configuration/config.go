// Package configuration builds typelog loggers from declarative JSON or
// YAML documents.
package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/typelog/typelog"
	"github.com/typelog/typelog/core"
)

// Config is the declarative configuration for a logger.
type Config struct {
	// MinimumSeverity is the global severity floor by name ("debug",
	// "warning", "all", ...). Empty means "all".
	MinimumSeverity string `json:"minimumSeverity,omitempty" yaml:"minimumSeverity"`

	// Console enables the default console sink.
	Console bool `json:"console" yaml:"console"`

	// File, when non-empty, enables a file sink appending to this path.
	File string `json:"file,omitempty" yaml:"file"`

	// Display toggles. Nil means the logger default.
	ShowTimestamp    *bool `json:"showTimestamp,omitempty" yaml:"showTimestamp"`
	ShowSeverity     *bool `json:"showSeverity,omitempty" yaml:"showSeverity"`
	ShowSubject      *bool `json:"showSubject,omitempty" yaml:"showSubject"`
	ShowSubjectValue *bool `json:"showSubjectValue,omitempty" yaml:"showSubjectValue"`

	// TimestampLayout is a Go reference-time layout.
	TimestampLayout string `json:"timestampLayout,omitempty" yaml:"timestampLayout"`

	// Subjects pre-registers subject type names for scope entries.
	Subjects []string `json:"subjects,omitempty" yaml:"subjects"`

	// Scopes lists scope tokens in ConfigureScopes syntax: the all-types
	// marker "ALL" or "Name[:SEVERITY]".
	Scopes []string `json:"scopes,omitempty" yaml:"scopes"`
}

// LoadFromFile loads configuration from a JSON or YAML file, chosen by
// extension (.yaml and .yml parse as YAML, everything else as JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadFromYAML(data)
	}
	return LoadFromJSON(data)
}

// LoadFromJSON loads configuration from JSON data.
func LoadFromJSON(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &config, nil
}

// LoadFromYAML loads configuration from YAML data.
func LoadFromYAML(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &config, nil
}

// Options converts the configuration into logger options, excluding the
// scope list (Build applies scopes so their errors can surface). The
// minimum severity is parsed strictly and fails with
// core.ErrInvalidSeverityName.
func (c *Config) Options() ([]typelog.Option, error) {
	var opts []typelog.Option
	if c.MinimumSeverity != "" {
		floor, err := core.ParseSeverity(c.MinimumSeverity)
		if err != nil {
			return nil, err
		}
		opts = append(opts, typelog.WithMinimumSeverity(floor))
	}
	if c.Console {
		opts = append(opts, typelog.WithConsole())
	}
	if c.File != "" {
		opts = append(opts, typelog.WithFile(c.File))
	}
	if c.ShowTimestamp != nil {
		opts = append(opts, typelog.WithShowTimestamp(*c.ShowTimestamp))
	}
	if c.ShowSeverity != nil {
		opts = append(opts, typelog.WithShowSeverity(*c.ShowSeverity))
	}
	if c.ShowSubject != nil {
		opts = append(opts, typelog.WithShowSubject(*c.ShowSubject))
	}
	if c.ShowSubjectValue != nil {
		opts = append(opts, typelog.WithShowSubjectValue(*c.ShowSubjectValue))
	}
	if c.TimestampLayout != "" {
		opts = append(opts, typelog.WithTimestampLayout(c.TimestampLayout))
	}
	if len(c.Subjects) > 0 {
		opts = append(opts, typelog.WithSubjects(c.Subjects...))
	}
	return opts, nil
}

// Build creates a logger from the configuration. Severity-parse failures
// inside scope tokens degrade per-entry; an unknown subject type or a bad
// minimum severity fails the build.
func (c *Config) Build() (*typelog.Logger, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	logger := typelog.New(opts...)
	if len(c.Scopes) > 0 {
		if err := logger.ConfigureScopes(c.Scopes); err != nil {
			return nil, err
		}
	}
	return logger, nil
}
