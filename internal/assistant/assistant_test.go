// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/litreview/pkg/types"
)

// scriptedClient returns a fixed response (or error) and records the prompt.
type scriptedClient struct {
	response string
	err      error
	prompt   string
}

func (c *scriptedClient) Generate(_ context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func testConfig() types.Config {
	return types.Config{
		Databases: []types.DatabaseEntry{
			{Name: "arXiv", Enabled: true},
			{Name: "PubMed", Enabled: true},
		},
		Methodologies: []string{"Systematic Review", "Narrative Review"},
	}
}

func testAssistant(client *scriptedClient) *Assistant {
	return New(client, testConfig(), zerolog.Nop())
}

func TestGenerateSearchQueries(t *testing.T) {
	client := &scriptedClient{
		response: "```json\n[{\"query\": \"a AND b\", \"explanation\": \"covers both\"}]\n```",
	}

	queries, err := testAssistant(client).GenerateSearchQueries(
		context.Background(), []string{"How does a affect b?"})
	require.NoError(t, err)

	require.Len(t, queries, 1)
	assert.Equal(t, "a AND b", queries[0].Query)
	assert.Equal(t, "covers both", queries[0].Explanation)
	assert.Contains(t, client.prompt, "How does a affect b?")
}

func TestGenerateSearchQueries_UnparseableDegradesToEmpty(t *testing.T) {
	client := &scriptedClient{response: "I'm sorry, I can't help with that."}

	queries, err := testAssistant(client).GenerateSearchQueries(
		context.Background(), []string{"q?"})
	require.NoError(t, err)
	assert.Empty(t, queries)
}

func TestGenerateSearchQueries_TransportErrorPropagates(t *testing.T) {
	client := &scriptedClient{err: errors.New("connection refused")}

	_, err := testAssistant(client).GenerateSearchQueries(
		context.Background(), []string{"q?"})
	assert.Error(t, err)
}

func TestSuggestDatabases_FiltersUnknownNames(t *testing.T) {
	client := &scriptedClient{
		response: `[
			{"database": "arXiv", "reason": "preprint coverage"},
			{"database": "Google Scholar", "reason": "hallucinated"},
			{"database": "PubMed", "reason": "biomedical"}
		]`,
	}

	a := testAssistant(client)
	suggestions, err := a.SuggestDatabases(
		context.Background(),
		[]string{"q?"},
		[]types.QueryRecord{{Query: "a"}},
		a.cfg.DatabaseNames(),
	)
	require.NoError(t, err)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "arXiv", suggestions[0].Database)
	assert.Equal(t, "PubMed", suggestions[1].Database)
}

func TestSuggestDatabases_UnparseableDegradesToEmpty(t *testing.T) {
	client := &scriptedClient{response: "no JSON here"}

	a := testAssistant(client)
	suggestions, err := a.SuggestDatabases(
		context.Background(), []string{"q?"}, nil, a.cfg.DatabaseNames())
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestGenerateReview(t *testing.T) {
	client := &scriptedClient{response: "# Introduction\n\nThe review text."}

	articles := []types.ArticleRecord{
		{
			Title:      "Candidate Study",
			Authors:    []string{"Doe, A."},
			Abstract:   "An abstract.",
			Conclusion: "A conclusion.",
			FullText:   "FULL TEXT SHOULD NOT APPEAR IN PROMPT",
		},
	}

	text, err := testAssistant(client).GenerateReview(
		context.Background(), []string{"q?"}, articles, "Systematic Review")
	require.NoError(t, err)

	assert.Equal(t, "# Introduction\n\nThe review text.", text)
	assert.Contains(t, client.prompt, "Systematic Review")
	assert.Contains(t, client.prompt, "Candidate Study")
	assert.Contains(t, client.prompt, "A conclusion.")
	// Prompts carry summaries, never the full text.
	assert.NotContains(t, client.prompt, "FULL TEXT SHOULD NOT APPEAR IN PROMPT")
}

func TestGenerateReview_UnknownMethodology(t *testing.T) {
	client := &scriptedClient{response: "irrelevant"}

	_, err := testAssistant(client).GenerateReview(
		context.Background(), []string{"q?"},
		[]types.ArticleRecord{{Title: "A"}}, "Vibes-Based Review")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "methodology")
}

func TestGenerateReview_NoArticles(t *testing.T) {
	client := &scriptedClient{response: "irrelevant"}

	_, err := testAssistant(client).GenerateReview(
		context.Background(), []string{"q?"}, nil, "Systematic Review")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no articles")
}

func TestExpandSection(t *testing.T) {
	client := &scriptedClient{response: "A much longer treatment of the topic."}

	text, err := testAssistant(client).ExpandSection(
		context.Background(), "Methods", "Short body.")
	require.NoError(t, err)

	assert.Equal(t, "A much longer treatment of the topic.", text)
	assert.Contains(t, client.prompt, "Methods")
	assert.Contains(t, client.prompt, "Short body.")
}
