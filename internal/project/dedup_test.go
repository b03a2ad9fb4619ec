// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/litreview/pkg/types"
)

func TestMerge_EmptyExisting(t *testing.T) {
	incoming := []types.ArticleRecord{
		{Title: "A", DOI: "10.1/a"},
		{Title: "B", DOI: "10.1/b"},
	}

	merged, accepted := Merge(nil, incoming, LiteralKey)
	assert.Equal(t, 2, accepted)
	assert.Len(t, merged, 2)
}

func TestMerge_DOIMatchWins(t *testing.T) {
	existing := []types.ArticleRecord{
		{Title: "Original Title", DOI: "10.1/a", Notes: "keep me"},
	}
	// Same DOI, different title: still a duplicate.
	incoming := []types.ArticleRecord{
		{Title: "Reformatted Title", DOI: "10.1/a"},
	}

	merged, accepted := Merge(existing, incoming, LiteralKey)
	assert.Equal(t, 0, accepted)
	assert.Len(t, merged, 1)
	// First-seen wins: no field merging.
	assert.Equal(t, "Original Title", merged[0].Title)
	assert.Equal(t, "keep me", merged[0].Notes)
}

func TestMerge_TitleMatchWithoutDOI(t *testing.T) {
	existing := []types.ArticleRecord{{Title: "Shared Title"}}
	incoming := []types.ArticleRecord{
		{Title: "Shared Title"},
		{Title: "New Title"},
	}

	merged, accepted := Merge(existing, incoming, LiteralKey)
	assert.Equal(t, 1, accepted)
	assert.Len(t, merged, 2)
	assert.Equal(t, "New Title", merged[1].Title)
}

func TestMerge_EmptyDOIsDoNotCollide(t *testing.T) {
	// Two DOI-less articles with different titles must both survive; an
	// empty DOI is not an identity.
	incoming := []types.ArticleRecord{
		{Title: "First"},
		{Title: "Second"},
	}

	_, accepted := Merge(nil, incoming, LiteralKey)
	assert.Equal(t, 2, accepted)
}

func TestMerge_IntraBatchDuplicates(t *testing.T) {
	incoming := []types.ArticleRecord{
		{Title: "Same", DOI: "10.1/x"},
		{Title: "Same", DOI: "10.1/x"},
		{Title: "Same Again", DOI: "10.1/x"},
	}

	merged, accepted := Merge(nil, incoming, LiteralKey)
	assert.Equal(t, 1, accepted)
	assert.Len(t, merged, 1)
}

func TestMerge_LiteralKeyIsCaseSensitive(t *testing.T) {
	existing := []types.ArticleRecord{{Title: "Deep Learning"}}
	incoming := []types.ArticleRecord{{Title: "deep learning"}}

	_, accepted := Merge(existing, incoming, LiteralKey)
	assert.Equal(t, 1, accepted)
}

func TestMerge_NormalizedKeyCollapsesVariants(t *testing.T) {
	existing := []types.ArticleRecord{{Title: "Deep Learning", DOI: "10.1/DL"}}
	incoming := []types.ArticleRecord{
		{Title: "deep   learning"},
		{Title: "Something Else", DOI: "10.1/dl"},
	}

	_, accepted := Merge(existing, incoming, NormalizedKey)
	assert.Equal(t, 0, accepted)
}

func TestMerge_NilKeyDefaultsToLiteral(t *testing.T) {
	existing := []types.ArticleRecord{{Title: "Exact"}}
	incoming := []types.ArticleRecord{{Title: "exact"}}

	_, accepted := Merge(existing, incoming, nil)
	assert.Equal(t, 1, accepted)
}

func TestMerge_PreservesOrder(t *testing.T) {
	existing := []types.ArticleRecord{{Title: "E1"}, {Title: "E2"}}
	incoming := []types.ArticleRecord{{Title: "N1"}, {Title: "E1"}, {Title: "N2"}}

	merged, accepted := Merge(existing, incoming, LiteralKey)
	assert.Equal(t, 2, accepted)

	var titles []string
	for _, a := range merged {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"E1", "E2", "N1", "N2"}, titles)
}
