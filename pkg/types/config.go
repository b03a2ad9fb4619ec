// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// LLMConfig holds settings for the text-generation capability.
type LLMConfig struct {
	// Model is the model identifier sent to the chat completions endpoint.
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey authenticates against the endpoint. Usually supplied through
	// the environment or the secrets directory rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Temperature is the sampling temperature (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature" mapstructure:"temperature"`

	// MaxTokens caps the response length (default 4000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens"`

	// MaxRetries is the number of retry attempts for failed calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// SearchConfig holds settings for the article retrieval stage.
type SearchConfig struct {
	// MaxPerDatabase is the number of results requested from each database
	// (default 5).
	MaxPerDatabase int `json:"max_per_database" yaml:"max_per_database" mapstructure:"max_per_database"`

	// RequestInterval spaces consecutive database calls (default 1s).
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval" mapstructure:"request_interval"`
}

// LibraryConfig holds settings for the cross-project article index.
type LibraryConfig struct {
	// Dir is the base directory for the index (contains index/library.db).
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups all settings for the litreview CLI.
type Config struct {
	LLM     LLMConfig     `json:"llm" yaml:"llm" mapstructure:"llm"`
	Search  SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	Library LibraryConfig `json:"library" yaml:"library" mapstructure:"library"`

	// Databases is the publication-database registry the suggestion and
	// search stages draw from.
	Databases []DatabaseEntry `json:"publication_databases" yaml:"publication_databases" mapstructure:"publication_databases"`

	// Methodologies enumerates the accepted review methodologies.
	Methodologies []string `json:"review_methodologies" yaml:"review_methodologies" mapstructure:"review_methodologies"`

	// RecentProjects lists recently opened project files, most recent first,
	// capped at ten entries.
	RecentProjects []string `json:"recent_projects" yaml:"recent_projects" mapstructure:"recent_projects"`
}

// DatabaseNames returns the names of all enabled databases in the registry.
func (c Config) DatabaseNames() []string {
	var names []string
	for _, db := range c.Databases {
		if db.Enabled {
			names = append(names, db.Name)
		}
	}
	return names
}

// HasMethodology reports whether m is one of the configured methodologies.
func (c Config) HasMethodology(m string) bool {
	for _, name := range c.Methodologies {
		if name == m {
			return true
		}
	}
	return false
}
