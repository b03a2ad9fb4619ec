// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// QueryRecord is one generated or manually entered search query together
// with the rationale the query-generation capability supplied for it.
type QueryRecord struct {
	Query       string `json:"query" yaml:"query"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// DatabaseSuggestion pairs a publication database name with the reason the
// suggestion capability recommended it. Database must match a name in the
// configured database registry; suggestions that do not are discarded.
type DatabaseSuggestion struct {
	Database string `json:"database" yaml:"database"`
	Reason   string `json:"reason" yaml:"reason"`
}

// DatabaseEntry is one entry in the configured publication-database registry.
type DatabaseEntry struct {
	Name    string `json:"name" yaml:"name" mapstructure:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	URL     string `json:"url" yaml:"url" mapstructure:"url"`
}

// Project is the persisted unit of work: research questions, generated
// queries, the retrieved article pool, the selection subset, and the review
// text. It serializes to a single JSON file at Path.
//
// SelectedArticles is derived: it always holds the pool records whose
// Selected flag is set, in pool order. It is regenerated before every save
// so the selection can never diverge from the pool.
type Project struct {
	Name              string          `json:"name"`
	Path              string          `json:"path"`
	ResearchQuestions []string        `json:"research_questions"`
	SearchQueries     []QueryRecord   `json:"search_queries"`
	SelectedDatabases []string        `json:"selected_databases"`
	Articles          []ArticleRecord `json:"articles"`
	SelectedArticles  []ArticleRecord `json:"selected_articles"`
	ReviewMethodology string          `json:"review_methodology"`
	ReviewContent     string          `json:"review_content"`
	DateCreated       time.Time       `json:"date_created"`
	DateModified      time.Time       `json:"date_modified"`
}

// NewProject returns an empty project rooted at path with both timestamps
// set to now.
func NewProject(name, path string) *Project {
	now := time.Now().UTC()
	return &Project{
		Name:         name,
		Path:         path,
		DateCreated:  now,
		DateModified: now,
	}
}
