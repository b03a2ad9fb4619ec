// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retriever searches publication databases for candidate articles
// and retrieves article full text. Real database integrations sit behind the
// Backend interface; the bundled backend synthesizes plausible results so
// the rest of the workflow can be exercised end to end.
package retriever

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/pdiddy/litreview/internal/conclusion"
	"github.com/pdiddy/litreview/pkg/types"
)

// Backend searches a single publication database.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, max int) ([]types.ArticleRecord, error)
}

// BackendFactory builds a backend for a database name. The retriever calls
// it once per selected database on each search.
type BackendFactory func(database string) Backend

// Retriever fans a query out across the selected databases. Calls are
// sequential and paced by a rate limiter so real backends are not hammered.
type Retriever struct {
	factory BackendFactory
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New returns a Retriever. When factory is nil the stub backend is used for
// every database.
func New(factory BackendFactory, cfg types.SearchConfig, log zerolog.Logger) *Retriever {
	if factory == nil {
		max := cfg.MaxPerDatabase
		factory = func(database string) Backend {
			return &StubBackend{Database: database, PerQuery: max}
		}
	}
	limit := rate.Inf
	if cfg.RequestInterval > 0 {
		limit = rate.Every(cfg.RequestInterval)
	}
	return &Retriever{
		factory: factory,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// Search runs query against each database and returns the combined results
// plus one message per failed database. A database failure is logged and
// skipped; it does not abort the remaining databases.
func (r *Retriever) Search(ctx context.Context, query string, databases []string, max int) ([]types.ArticleRecord, []string) {
	var results []types.ArticleRecord
	var failures []string

	for _, db := range databases {
		if err := r.limiter.Wait(ctx); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", db, err))
			return results, failures
		}

		r.log.Info().Str("database", db).Str("query", query).Msg("searching")

		backend := r.factory(db)
		found, err := backend.Search(ctx, query, max)
		if err != nil {
			r.log.Error().Err(err).Str("database", db).Msg("database search failed")
			failures = append(failures, fmt.Sprintf("%s: %v", db, err))
			continue
		}
		results = append(results, found...)
	}
	return results, failures
}

// FetchFullText populates the article's full text and extracts its
// conclusion. The record is mutated only after retrieval succeeds.
//
// Retrieval is simulated: a sectioned body is synthesized from the article
// metadata, standing in for open-access resolution and PDF/HTML parsing.
func (r *Retriever) FetchFullText(ctx context.Context, a *types.ArticleRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.Title == "" {
		return fmt.Errorf("article has no title")
	}

	r.log.Info().Str("title", a.Title).Msg("retrieving full text")

	text := syntheticFullText(a)
	a.FullText = text
	if body, ok := conclusion.Extract(text); ok {
		a.Conclusion = body
	}
	return nil
}
