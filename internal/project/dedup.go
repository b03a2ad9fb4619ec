// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"strings"

	"github.com/pdiddy/litreview/pkg/types"
)

// KeyFunc computes the deduplication identity of an article: the DOI when
// one is present, otherwise the title.
type KeyFunc func(a types.ArticleRecord) (doiKey, titleKey string)

// LiteralKey matches the historical behavior: DOIs and titles compare by
// exact string equality. Case or whitespace variants of the same title are
// treated as distinct articles.
func LiteralKey(a types.ArticleRecord) (string, string) {
	doiKey := ""
	if a.DOI != "" {
		doiKey = "doi:" + a.DOI
	}
	return doiKey, "title:" + a.Title
}

// NormalizedKey lowercases DOIs and lowercases and whitespace-collapses
// titles before comparison, so trivially reformatted records of the same
// article collide.
func NormalizedKey(a types.ArticleRecord) (string, string) {
	doiKey := ""
	if a.DOI != "" {
		doiKey = "doi:" + strings.ToLower(strings.TrimSpace(a.DOI))
	}
	title := strings.Join(strings.Fields(strings.ToLower(a.Title)), " ")
	return doiKey, "title:" + title
}

// Merge appends to existing every incoming article that matches nothing
// already seen, and returns the union in existing-then-new order along with
// the number of accepted records. A match is a shared non-empty DOI key or a
// shared title key; the first-seen record wins and no fields are merged.
// Previously accepted incoming records participate in matching, so a batch
// cannot introduce intra-batch duplicates.
func Merge(existing, incoming []types.ArticleRecord, key KeyFunc) ([]types.ArticleRecord, int) {
	if key == nil {
		key = LiteralKey
	}

	seen := make(map[string]bool, 2*len(existing))
	for _, a := range existing {
		doiKey, titleKey := key(a)
		if doiKey != "" {
			seen[doiKey] = true
		}
		seen[titleKey] = true
	}

	merged := existing
	accepted := 0
	for _, a := range incoming {
		doiKey, titleKey := key(a)
		if (doiKey != "" && seen[doiKey]) || seen[titleKey] {
			continue
		}
		if doiKey != "" {
			seen[doiKey] = true
		}
		seen[titleKey] = true
		merged = append(merged, a)
		accepted++
	}
	return merged, accepted
}
