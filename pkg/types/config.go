// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// BibliographyConfig locates the data payloads emitted by the document generator.
type BibliographyConfig struct {
	// Path is the bibliography payload: .json, .yaml, or the generator's .js script.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// SDOPath is the syntax-directed operation map. It may point at the same
	// script as Path.
	SDOPath string `json:"sdo_path,omitempty" yaml:"sdo_path,omitempty" mapstructure:"sdo_path"`

	// SectionsPath maps ids to multipage section names. Empty for single-page documents.
	SectionsPath string `json:"sections_path,omitempty" yaml:"sections_path,omitempty" mapstructure:"sections_path"`
}

// SearchConfig holds settings for bibliography search.
type SearchConfig struct {
	// MaxResults caps the number of ranked results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// MinQueryLength is the shortest query that produces results (default 2).
	// Shorter non-empty queries keep the search box open with no results.
	MinQueryLength int `json:"min_query_length" yaml:"min_query_length" mapstructure:"min_query_length"`
}

// TrackerConfig holds settings for active-section tracking.
type TrackerConfig struct {
	// ViewportHeight is the height of the visible area in layout units (default 800).
	ViewportHeight float64 `json:"viewport_height" yaml:"viewport_height" mapstructure:"viewport_height"`

	// Debounce is the quiescence window before re-tracking after a change (default 150ms).
	Debounce time.Duration `json:"debounce" yaml:"debounce" mapstructure:"debounce"`
}

// StateConfig holds settings for the session state store.
type StateConfig struct {
	// Dir is the directory holding state.db (default ".specnav").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Session names the snapshot slot used by save/restore (default "default").
	Session string `json:"session" yaml:"session" mapstructure:"session"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Env selects the encoder: prod (JSON) or local/dev (console). Default "local".
	Env string `json:"env" yaml:"env" mapstructure:"env"`

	// Level overrides the level for Env: debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty" mapstructure:"level"`
}

// Config groups all specnav settings.
type Config struct {
	Bibliography BibliographyConfig `json:"bibliography" yaml:"bibliography" mapstructure:"bibliography"`
	Search       SearchConfig       `json:"search" yaml:"search" mapstructure:"search"`
	Tracker      TrackerConfig      `json:"tracker" yaml:"tracker" mapstructure:"tracker"`
	State        StateConfig        `json:"state" yaml:"state" mapstructure:"state"`
	Logging      LoggingConfig      `json:"logging" yaml:"logging" mapstructure:"logging"`
}

const (
	DefaultMaxResults     = 50
	DefaultMinQueryLength = 2
	DefaultViewportHeight = 800
	DefaultDebounce       = 150 * time.Millisecond
	DefaultStateDir       = ".specnav"
	DefaultSession        = "default"
	DefaultLogEnv         = "local"
)

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero-valued fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = DefaultMaxResults
	}
	if c.Search.MinQueryLength <= 0 {
		c.Search.MinQueryLength = DefaultMinQueryLength
	}
	if c.Tracker.ViewportHeight <= 0 {
		c.Tracker.ViewportHeight = DefaultViewportHeight
	}
	if c.Tracker.Debounce <= 0 {
		c.Tracker.Debounce = DefaultDebounce
	}
	if c.State.Dir == "" {
		c.State.Dir = DefaultStateDir
	}
	if c.State.Session == "" {
		c.State.Session = DefaultSession
	}
	if c.Logging.Env == "" {
		c.Logging.Env = DefaultLogEnv
	}
}
