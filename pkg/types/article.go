// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the litreview workflow:
// bibliographic records, the persisted project aggregate, and the structures
// exchanged with the query-generation and database-suggestion capabilities.
package types

// ArticleRecord is a single bibliographic record with optional full text and
// review annotations. A non-empty DOI is the stable identity key; otherwise
// the title is the identity key.
type ArticleRecord struct {
	// Title is the article title as returned by the source database.
	Title string `json:"title" yaml:"title"`

	// Authors lists the article authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Journal is the publication venue.
	Journal string `json:"journal" yaml:"journal"`

	// Year is the publication year as reported by the source (kept as a
	// string because sources disagree on precision).
	Year string `json:"year" yaml:"year"`

	// DOI is the digital object identifier. May be empty.
	DOI string `json:"doi" yaml:"doi"`

	// Abstract is the article abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Conclusion is the extracted conclusion section, populated once full
	// text is available.
	Conclusion string `json:"conclusion" yaml:"conclusion"`

	// FullText is the retrieved article body, when available.
	FullText string `json:"full_text" yaml:"full_text"`

	// URL points at the article landing page.
	URL string `json:"url" yaml:"url"`

	// SourceDB names the publication database that produced this record.
	SourceDB string `json:"source_db" yaml:"source_db"`

	// Selected marks the article for inclusion in the generated review.
	Selected bool `json:"selected" yaml:"selected"`

	// Notes holds the researcher's free-form annotations.
	Notes string `json:"notes" yaml:"notes"`

	// LocalFilePath is the path of an imported PDF, when one was attached.
	LocalFilePath string `json:"local_file_path" yaml:"local_file_path"`
}

// Summary returns the subset of fields sent to the review-generation
// capability. Full text is deliberately excluded to keep prompts bounded.
type Summary struct {
	Title      string   `json:"title"`
	Authors    []string `json:"authors"`
	Journal    string   `json:"journal"`
	Year       string   `json:"year"`
	Abstract   string   `json:"abstract"`
	Conclusion string   `json:"conclusion"`
}

// Summarize extracts the prompt-facing summary of an article.
func (a ArticleRecord) Summarize() Summary {
	return Summary{
		Title:      a.Title,
		Authors:    a.Authors,
		Journal:    a.Journal,
		Year:       a.Year,
		Abstract:   a.Abstract,
		Conclusion: a.Conclusion,
	}
}
