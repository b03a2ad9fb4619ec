// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library maintains a cross-project SQLite index of retrieved
// articles with full-text search over titles, abstracts, and article bodies.
//
// The index uses the FTS5 extension, which mattn/go-sqlite3 compiles only
// under the sqlite_fts5 build tag. The mage Build and Test targets pass the
// tag; without it NewStore fails with "no such module: fts5".
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/litreview/internal/project"
	"github.com/pdiddy/litreview/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "library.db"
)

// Store manages the library SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the library database at dir/index/library.db
// and creates the schema if it does not exist.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.Dir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			path TEXT PRIMARY KEY,
			name TEXT,
			indexed_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS articles (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			key TEXT NOT NULL,
			project_path TEXT NOT NULL REFERENCES projects(path),
			title TEXT,
			authors TEXT,
			journal TEXT,
			year TEXT,
			doi TEXT,
			abstract TEXT,
			conclusion TEXT,
			full_text TEXT,
			selected INTEGER,
			UNIQUE(project_path, key)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_project ON articles(project_path)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='articles_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE articles_fts USING fts5(title, abstract, full_text, content=articles, content_rowid=rowid)`,
			`CREATE TRIGGER articles_ai AFTER INSERT ON articles BEGIN
				INSERT INTO articles_fts(rowid, title, abstract, full_text)
				VALUES (new.rowid, new.title, new.abstract, new.full_text);
			END`,
			`CREATE TRIGGER articles_ad AFTER DELETE ON articles BEGIN
				INSERT INTO articles_fts(articles_fts, rowid, title, abstract, full_text)
				VALUES('delete', old.rowid, old.title, old.abstract, old.full_text);
			END`,
			`CREATE TRIGGER articles_au AFTER UPDATE ON articles BEGIN
				INSERT INTO articles_fts(articles_fts, rowid, title, abstract, full_text)
				VALUES('delete', old.rowid, old.title, old.abstract, old.full_text);
				INSERT INTO articles_fts(rowid, title, abstract, full_text)
				VALUES (new.rowid, new.title, new.abstract, new.full_text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Index replaces the library's view of p's article pool in one transaction
// and returns the number of rows indexed, after collapsing records that share
// a normalized key. Re-indexing an unchanged project is cheap and idempotent.
func (s *Store) Index(ctx context.Context, p *types.Project) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO projects (path, name, indexed_at) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET name=excluded.name, indexed_at=excluded.indexed_at`,
		p.Path, p.Name, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return 0, fmt.Errorf("upserting project: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM articles WHERE project_path = ?`, p.Path,
	); err != nil {
		return 0, fmt.Errorf("deleting old articles: %w", err)
	}

	// The pool may legitimately hold case/whitespace variants of the same
	// title (literal-key matching), which collide under the normalized index
	// key. First-seen wins, matching the merge semantics; a collision must
	// not make the project unindexable.
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (key, project_path, title, authors, journal, year, doi, abstract, conclusion, full_text, selected)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(project_path, key) DO NOTHING`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, a := range p.Articles {
		doiKey, titleKey := project.NormalizedKey(a)
		key := doiKey
		if key == "" {
			key = titleKey
		}
		authorsJSON, _ := json.Marshal(a.Authors)
		res, err := stmt.ExecContext(ctx,
			key, p.Path, a.Title, string(authorsJSON), a.Journal, a.Year,
			a.DOI, a.Abstract, a.Conclusion, a.FullText, a.Selected,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting article %q: %w", a.Title, err)
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("inserting article %q: %w", a.Title, err)
		}
		count += int(inserted)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return count, nil
}

// Hit is one library search result.
type Hit struct {
	ProjectPath string
	Title       string
	Journal     string
	Year        string
	DOI         string
	Snippet     string
	Selected    bool
}

// Search runs an FTS5 query over the indexed articles and returns the best
// matches in relevance order.
func (s *Store) Search(ctx context.Context, query string, max int) ([]Hit, error) {
	if max <= 0 {
		max = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT a.project_path, a.title, a.journal, a.year, a.doi, a.selected,
		        snippet(articles_fts, 1, '[', ']', '...', 12)
		 FROM articles_fts
		 JOIN articles a ON a.rowid = articles_fts.rowid
		 WHERE articles_fts MATCH ?
		 ORDER BY bm25(articles_fts)
		 LIMIT ?`,
		query, max,
	)
	if err != nil {
		return nil, fmt.Errorf("querying library: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.ProjectPath, &h.Title, &h.Journal, &h.Year, &h.DOI, &h.Selected, &h.Snippet); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
