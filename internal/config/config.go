// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config supplies defaults, viper binding, and persistence for the
// litreview configuration, plus credential loading from the environment and
// the secrets directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litreview/pkg/types"
)

// DefaultFileName is the config file looked up in the working directory and
// under ~/.config/litreview/.
const DefaultFileName = "litreview.yaml"

// maxRecent caps the recent-projects list.
const maxRecent = 10

// Default returns the built-in configuration: the standard publication
// database registry and the accepted review methodologies.
func Default() types.Config {
	return types.Config{
		LLM: types.LLMConfig{
			Model:       "gpt-4o",
			Temperature: 0.7,
			MaxTokens:   4000,
			MaxRetries:  3,
			Timeout:     60 * time.Second,
		},
		Search: types.SearchConfig{
			MaxPerDatabase:  5,
			RequestInterval: time.Second,
		},
		Library: types.LibraryConfig{
			Dir:        "library",
			MaxResults: 20,
		},
		Databases: []types.DatabaseEntry{
			{Name: "arXiv", Enabled: true, URL: "https://arxiv.org/search/"},
			{Name: "PubMed", Enabled: true, URL: "https://pubmed.ncbi.nlm.nih.gov/"},
			{Name: "IEEE Xplore", Enabled: true, URL: "https://ieeexplore.ieee.org/search/"},
			{Name: "ACM Digital Library", Enabled: true, URL: "https://dl.acm.org/action/doSearch"},
			{Name: "ScienceDirect", Enabled: true, URL: "https://www.sciencedirect.com/search"},
		},
		Methodologies: []string{
			"Systematic Review",
			"Meta-analysis",
			"Narrative Review",
			"Scoping Review",
			"Integrative Review",
		},
	}
}

// FromViper overlays v onto the defaults. Registry and methodology lists in
// the file replace the defaults wholesale; scalar settings merge.
func FromViper(v *viper.Viper) (types.Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories as needed.
func Save(cfg types.Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// AddRecentProject moves path to the front of the recent-projects list,
// dropping an earlier occurrence and truncating to the cap.
func AddRecentProject(cfg *types.Config, path string) {
	recent := make([]string, 0, len(cfg.RecentProjects)+1)
	recent = append(recent, path)
	for _, p := range cfg.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecent {
		recent = recent[:maxRecent]
	}
	cfg.RecentProjects = recent
}

// UserConfigPath returns ~/.config/litreview/litreview.yaml, or just the
// file name when the home directory cannot be determined.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, ".config", "litreview", DefaultFileName)
}
