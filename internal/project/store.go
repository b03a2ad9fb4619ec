// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project owns the persisted project aggregate: JSON save/load,
// mutation helpers, and the deduplicating merge of retrieved articles.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/litreview/pkg/types"
)

// Store saves and loads projects. Persistence failures are logged with
// context and returned to the caller; silent data loss is never acceptable.
type Store struct {
	log zerolog.Logger
}

// NewStore returns a Store that logs through log.
func NewStore(log zerolog.Logger) *Store {
	return &Store{log: log}
}

// Create writes a fresh empty project to path and returns it.
func (s *Store) Create(name, path string) (*types.Project, error) {
	p := types.NewProject(name, path)
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save refreshes date_modified, regenerates the selection subset from the
// article pool, and writes the project as indented JSON to its path.
func (s *Store) Save(p *types.Project) error {
	if p.Path == "" {
		return fmt.Errorf("project path not set")
	}

	p.DateModified = time.Now().UTC()
	p.SelectedArticles = selectedSubset(p.Articles)

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling project %s: %w", p.Name, err)
	}
	if err := os.WriteFile(p.Path, data, 0o644); err != nil {
		s.log.Error().Err(err).Str("path", p.Path).Msg("saving project")
		return fmt.Errorf("saving project to %s: %w", p.Path, err)
	}
	return nil
}

// Load reads a project from path. The JSON is decoded against the fixed
// Project schema; fields the schema does not declare are ignored. The
// selection subset is rebuilt from the pool's Selected flags so a hand-edited
// file cannot leave the two out of sync.
func (s *Store) Load(path string) (*types.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("loading project")
		return nil, fmt.Errorf("reading project %s: %w", path, err)
	}

	var p types.Project
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("parsing project")
		return nil, fmt.Errorf("parsing project %s: %w", path, err)
	}

	if p.Path == "" {
		p.Path = path
	}
	p.SelectedArticles = selectedSubset(p.Articles)
	return &p, nil
}

// selectedSubset returns copies of the pool records whose Selected flag is
// set, in pool order.
func selectedSubset(pool []types.ArticleRecord) []types.ArticleRecord {
	var subset []types.ArticleRecord
	for _, a := range pool {
		if a.Selected {
			subset = append(subset, a)
		}
	}
	return subset
}
