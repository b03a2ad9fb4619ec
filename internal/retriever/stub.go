// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retriever

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/litreview/pkg/types"
)

// wordPattern splits a boolean query into candidate keywords.
var wordPattern = regexp.MustCompile(`\w+`)

// StubBackend synthesizes deterministic article records for a database. It
// stands in for API or scraping integrations and deliberately produces
// records with the same shape real backends would: DOI, journal, abstract,
// landing URL, and source database.
type StubBackend struct {
	// Database is the publication database this backend impersonates.
	Database string

	// PerQuery is the number of records returned per search (default 5).
	PerQuery int
}

// Name returns the database name.
func (b *StubBackend) Name() string { return b.Database }

// Search derives keywords from the query (boolean operators removed) and
// fabricates one record per slot, cycling through the keywords. Output is a
// pure function of the query and database, so repeated searches dedup away.
func (b *StubBackend) Search(ctx context.Context, query string, max int) ([]types.ArticleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	count := b.PerQuery
	if count <= 0 {
		count = 5
	}
	if max > 0 && max < count {
		count = max
	}

	keywords := extractKeywords(query)

	results := make([]types.ArticleRecord, 0, count)
	for i := 1; i <= count; i++ {
		keyword := "research"
		if len(keywords) > 0 {
			keyword = keywords[i%len(keywords)]
		}
		year := 2020 + i%5

		results = append(results, types.ArticleRecord{
			Title:   fmt.Sprintf("Research on %s in Modern Context (%d)", titleCase(keyword), i),
			Authors: []string{fmt.Sprintf("Author %dA", i), fmt.Sprintf("Author %dB", i)},
			Journal: fmt.Sprintf("Journal of %s Research", b.Database),
			Year:    fmt.Sprintf("%d", year),
			DOI:     fmt.Sprintf("10.1234/jxyz.%d.%04d", year, i),
			Abstract: fmt.Sprintf(
				"This study examines %s in various contexts. We explored how %s affects outcomes and presents a new framework for understanding its implications.",
				keyword, keyword),
			URL:      fmt.Sprintf("https://example.org/%s/%d/%04d", strings.ToLower(b.Database), year, i),
			SourceDB: b.Database,
		})
	}
	return results, nil
}

// extractKeywords pulls the searchable terms out of a boolean query.
func extractKeywords(query string) []string {
	var keywords []string
	for _, w := range wordPattern.FindAllString(query, -1) {
		switch strings.ToLower(w) {
		case "and", "or", "not":
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}

// titleCase upper-cases the first rune of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// syntheticFullText fabricates a sectioned article body whose conclusion the
// extractor can find.
func syntheticFullText(a *types.ArticleRecord) string {
	title := strings.ToLower(a.Title)
	return fmt.Sprintf(
		"INTRODUCTION\n\n"+
			"This paper explores %s. Our research was motivated by the need to understand this topic better.\n\n"+
			"METHODOLOGY\n\n"+
			"We conducted a study using qualitative and quantitative methods.\n\n"+
			"RESULTS\n\n"+
			"Our findings indicate significant correlations between variables.\n\n"+
			"DISCUSSION\n\n"+
			"These results suggest important implications for the field.\n\n"+
			"CONCLUSION\n\n"+
			"In conclusion, we have demonstrated that our approach provides valuable insights into %s. Future research should focus on expanding these findings.",
		title, title)
}
