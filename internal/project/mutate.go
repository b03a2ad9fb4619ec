// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"fmt"

	"github.com/pdiddy/litreview/pkg/types"
)

// Mutation helpers. Each helper changes the in-memory project only; callers
// save through the Store after the triggering operation has fully succeeded,
// so a failed capability call never leaves a half-mutated project on disk.

// AddQuestion appends a research question.
func AddQuestion(p *types.Project, question string) {
	p.ResearchQuestions = append(p.ResearchQuestions, question)
}

// RemoveQuestion deletes the question at index.
func RemoveQuestion(p *types.Project, index int) error {
	if index < 0 || index >= len(p.ResearchQuestions) {
		return fmt.Errorf("question index %d out of range [0,%d)", index, len(p.ResearchQuestions))
	}
	p.ResearchQuestions = append(p.ResearchQuestions[:index], p.ResearchQuestions[index+1:]...)
	return nil
}

// AddQuery appends a search query.
func AddQuery(p *types.Project, q types.QueryRecord) {
	p.SearchQueries = append(p.SearchQueries, q)
}

// RemoveQuery deletes the query at index.
func RemoveQuery(p *types.Project, index int) error {
	if index < 0 || index >= len(p.SearchQueries) {
		return fmt.Errorf("query index %d out of range [0,%d)", index, len(p.SearchQueries))
	}
	p.SearchQueries = append(p.SearchQueries[:index], p.SearchQueries[index+1:]...)
	return nil
}

// SetDatabaseSelected adds or removes a database name from the project's
// selected set. Adding an already-selected name is a no-op.
func SetDatabaseSelected(p *types.Project, database string, selected bool) {
	idx := -1
	for i, name := range p.SelectedDatabases {
		if name == database {
			idx = i
			break
		}
	}
	switch {
	case selected && idx < 0:
		p.SelectedDatabases = append(p.SelectedDatabases, database)
	case !selected && idx >= 0:
		p.SelectedDatabases = append(p.SelectedDatabases[:idx], p.SelectedDatabases[idx+1:]...)
	}
}

// ApplySuggestions replaces the selected databases with the suggested names.
func ApplySuggestions(p *types.Project, suggestions []types.DatabaseSuggestion) {
	p.SelectedDatabases = nil
	for _, s := range suggestions {
		p.SelectedDatabases = append(p.SelectedDatabases, s.Database)
	}
}

// MergeArticles merges retrieved articles into the pool without introducing
// duplicates and returns the number accepted.
func MergeArticles(p *types.Project, incoming []types.ArticleRecord, key KeyFunc) int {
	merged, accepted := Merge(p.Articles, incoming, key)
	p.Articles = merged
	return accepted
}

// FindArticle locates the pool record matching ref (a DOI or an exact title)
// and returns a pointer into the pool, or nil when nothing matches.
func FindArticle(p *types.Project, ref string) *types.ArticleRecord {
	for i := range p.Articles {
		if p.Articles[i].DOI != "" && p.Articles[i].DOI == ref {
			return &p.Articles[i]
		}
	}
	for i := range p.Articles {
		if p.Articles[i].Title == ref {
			return &p.Articles[i]
		}
	}
	return nil
}

// SetSelected marks or unmarks the referenced article for inclusion in the
// review. The selection subset is regenerated from these flags on save.
func SetSelected(p *types.Project, ref string, selected bool) error {
	a := FindArticle(p, ref)
	if a == nil {
		return fmt.Errorf("no article matches %q", ref)
	}
	a.Selected = selected
	return nil
}

// SetNotes replaces the notes of the referenced article.
func SetNotes(p *types.Project, ref, notes string) error {
	a := FindArticle(p, ref)
	if a == nil {
		return fmt.Errorf("no article matches %q", ref)
	}
	a.Notes = notes
	return nil
}

// Selected returns the articles currently marked for inclusion, in pool order.
func Selected(p *types.Project) []types.ArticleRecord {
	return selectedSubset(p.Articles)
}
