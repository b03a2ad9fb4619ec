// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retriever

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litreview/pkg/types"
)

// ResultsFile is the on-disk representation of one search run. The
// researcher can save a run to a file and review or re-merge it later
// without hitting the databases again.
type ResultsFile struct {
	Query     string                `yaml:"query"`
	Databases []string              `yaml:"databases"`
	Results   []types.ArticleRecord `yaml:"results"`
	Summary   ResultsSummary        `yaml:"summary"`
}

// ResultsSummary stores result statistics and a timestamp.
type ResultsSummary struct {
	Total     int       `yaml:"total"`
	Failures  []string  `yaml:"failures,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultsFile saves a search run to a YAML file.
func WriteResultsFile(path, query string, databases []string, results []types.ArticleRecord, failures []string) error {
	rf := ResultsFile{
		Query:     query,
		Databases: databases,
		Results:   results,
		Summary: ResultsSummary{
			Total:     len(results),
			Failures:  failures,
			Timestamp: time.Now(),
		},
	}
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results file %s: %w", path, err)
	}
	return nil
}

// ReadResultsFile loads a previously saved search run.
func ReadResultsFile(path string) (*ResultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results file %s: %w", path, err)
	}
	var rf ResultsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing results file %s: %w", path, err)
	}
	return &rf, nil
}
