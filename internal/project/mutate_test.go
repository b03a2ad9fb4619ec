// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/litreview/pkg/types"
)

func TestQuestions_AddRemove(t *testing.T) {
	p := types.NewProject("q", "q.json")

	AddQuestion(p, "first?")
	AddQuestion(p, "second?")
	require.Len(t, p.ResearchQuestions, 2)

	require.NoError(t, RemoveQuestion(p, 0))
	assert.Equal(t, []string{"second?"}, p.ResearchQuestions)

	assert.Error(t, RemoveQuestion(p, 5))
	assert.Error(t, RemoveQuestion(p, -1))
}

func TestQueries_AddRemove(t *testing.T) {
	p := types.NewProject("q", "q.json")

	AddQuery(p, types.QueryRecord{Query: "a AND b"})
	AddQuery(p, types.QueryRecord{Query: "c OR d"})
	require.NoError(t, RemoveQuery(p, 1))
	require.Len(t, p.SearchQueries, 1)
	assert.Equal(t, "a AND b", p.SearchQueries[0].Query)

	assert.Error(t, RemoveQuery(p, 1))
}

func TestSetDatabaseSelected(t *testing.T) {
	p := types.NewProject("db", "db.json")

	SetDatabaseSelected(p, "arXiv", true)
	SetDatabaseSelected(p, "PubMed", true)
	// Re-adding is a no-op.
	SetDatabaseSelected(p, "arXiv", true)
	assert.Equal(t, []string{"arXiv", "PubMed"}, p.SelectedDatabases)

	SetDatabaseSelected(p, "arXiv", false)
	assert.Equal(t, []string{"PubMed"}, p.SelectedDatabases)

	// Deselecting something not selected is a no-op.
	SetDatabaseSelected(p, "arXiv", false)
	assert.Equal(t, []string{"PubMed"}, p.SelectedDatabases)
}

func TestApplySuggestions_ReplacesSelection(t *testing.T) {
	p := types.NewProject("db", "db.json")
	p.SelectedDatabases = []string{"arXiv"}

	ApplySuggestions(p, []types.DatabaseSuggestion{
		{Database: "PubMed", Reason: "biomedical focus"},
		{Database: "ScienceDirect", Reason: "broad coverage"},
	})
	assert.Equal(t, []string{"PubMed", "ScienceDirect"}, p.SelectedDatabases)
}

func TestFindArticle(t *testing.T) {
	p := types.NewProject("find", "find.json")
	p.Articles = []types.ArticleRecord{
		{Title: "By Title Only"},
		{Title: "Has DOI", DOI: "10.1/x"},
		// A title that happens to look like another record's DOI: DOI
		// matching must win.
		{Title: "10.1/x has a strange title"},
	}

	assert.Equal(t, "Has DOI", FindArticle(p, "10.1/x").Title)
	assert.Equal(t, "By Title Only", FindArticle(p, "By Title Only").Title)
	assert.Nil(t, FindArticle(p, "nothing matches this"))
}

func TestSetSelectedAndNotes(t *testing.T) {
	p := types.NewProject("sel", "sel.json")
	p.Articles = []types.ArticleRecord{
		{Title: "A", DOI: "10.1/a"},
		{Title: "B"},
	}

	require.NoError(t, SetSelected(p, "10.1/a", true))
	require.NoError(t, SetNotes(p, "B", "read later"))

	assert.True(t, p.Articles[0].Selected)
	assert.Equal(t, "read later", p.Articles[1].Notes)

	selected := Selected(p)
	require.Len(t, selected, 1)
	assert.Equal(t, "A", selected[0].Title)

	assert.Error(t, SetSelected(p, "missing", true))
	assert.Error(t, SetNotes(p, "missing", "x"))
}
