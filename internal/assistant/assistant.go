// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assistant drives the language-model capability: it turns research
// questions into search queries, suggests publication databases, generates
// the review text, and expands individual review sections.
//
// Structural failures in model responses (missing or malformed JSON) degrade
// to empty results with a logged warning so the interactive flow continues;
// transport failures propagate to the caller.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/litreview/internal/llm"
	"github.com/pdiddy/litreview/pkg/types"
)

// Assistant wraps a text-generation client with the review-workflow
// operations.
type Assistant struct {
	client llm.Client
	cfg    types.Config
	log    zerolog.Logger
}

// New returns an Assistant using client for generation.
func New(client llm.Client, cfg types.Config, log zerolog.Logger) *Assistant {
	return &Assistant{client: client, cfg: cfg, log: log}
}

// GenerateSearchQueries asks the model for 3-5 database queries covering the
// research questions. An unparseable response yields an empty slice, not an
// error.
func (a *Assistant) GenerateSearchQueries(ctx context.Context, questions []string) ([]types.QueryRecord, error) {
	prompt, err := renderPrompt(queriesPromptTmpl, struct{ Questions string }{
		Questions: strings.Join(questions, "\n"),
	})
	if err != nil {
		return nil, err
	}

	text, err := a.client.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating search queries: %w", err)
	}

	var queries []types.QueryRecord
	if !a.decodeArray(text, &queries, "search queries") {
		return []types.QueryRecord{}, nil
	}
	return queries, nil
}

// SuggestDatabases recommends publication databases for the questions and
// queries. Suggestions naming a database outside available are discarded.
func (a *Assistant) SuggestDatabases(ctx context.Context, questions []string, queries []types.QueryRecord, available []string) ([]types.DatabaseSuggestion, error) {
	queriesJSON, err := json.Marshal(queries)
	if err != nil {
		return nil, fmt.Errorf("marshaling queries: %w", err)
	}

	prompt, err := renderPrompt(databasesPromptTmpl, struct {
		Questions, Queries, Databases string
	}{
		Questions: strings.Join(questions, "\n"),
		Queries:   string(queriesJSON),
		Databases: strings.Join(available, ", "),
	})
	if err != nil {
		return nil, err
	}

	text, err := a.client.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("suggesting databases: %w", err)
	}

	var suggestions []types.DatabaseSuggestion
	if !a.decodeArray(text, &suggestions, "database suggestions") {
		return []types.DatabaseSuggestion{}, nil
	}

	known := make(map[string]bool, len(available))
	for _, name := range available {
		known[name] = true
	}
	kept := suggestions[:0]
	for _, s := range suggestions {
		if known[s.Database] {
			kept = append(kept, s)
			continue
		}
		a.log.Warn().Str("database", s.Database).Msg("discarding suggestion for unknown database")
	}
	return kept, nil
}

// GenerateReview produces the review text for the selected articles using
// the given methodology, which must be one of the configured set.
func (a *Assistant) GenerateReview(ctx context.Context, questions []string, articles []types.ArticleRecord, methodology string) (string, error) {
	if !a.cfg.HasMethodology(methodology) {
		return "", fmt.Errorf("unknown review methodology %q", methodology)
	}
	if len(articles) == 0 {
		return "", fmt.Errorf("no articles selected for review")
	}

	summaries := make([]types.Summary, len(articles))
	for i, art := range articles {
		summaries[i] = art.Summarize()
	}
	articlesJSON, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling article summaries: %w", err)
	}

	prompt, err := renderPrompt(reviewPromptTmpl, struct {
		Methodology, Questions, Articles string
	}{
		Methodology: methodology,
		Questions:   strings.Join(questions, "\n"),
		Articles:    string(articlesJSON),
	})
	if err != nil {
		return "", err
	}

	text, err := a.client.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating review: %w", err)
	}
	return text, nil
}

// ExpandSection rewrites one review section with more depth, keeping its
// structure and tone.
func (a *Assistant) ExpandSection(ctx context.Context, title, body string) (string, error) {
	prompt, err := renderPrompt(expandPromptTmpl, struct{ Title, Body string }{
		Title: title,
		Body:  body,
	})
	if err != nil {
		return "", err
	}

	text, err := a.client.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("expanding section %q: %w", title, err)
	}
	return text, nil
}

// decodeArray extracts and unmarshals a JSON array from a model response.
// Returns false (after logging) when the response holds no usable array.
func (a *Assistant) decodeArray(text string, dst any, what string) bool {
	payload, err := llm.ExtractJSONArray(text)
	if errors.Is(err, llm.ErrNoJSON) {
		a.log.Warn().Str("response", clip(text, 200)).Msgf("no JSON array in %s response", what)
		return false
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		a.log.Warn().Err(err).Msgf("malformed %s response", what)
		return false
	}
	return true
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
