package db

import (
	"context"
	"fmt"

	"fedtools/pkg/domain"
)

// Store persists retrieved documents into a relational releases table via
// any DBProvider (plain Postgres or Supabase).
type Store struct {
	provider DBProvider
	table    string
}

// NewStore creates a release store writing to the given table.
func NewStore(provider DBProvider, table string) *Store {
	if table == "" {
		table = "fed_releases"
	}
	return &Store{provider: provider, table: table}
}

// EnsureSchema creates the releases table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			url          TEXT PRIMARY KEY,
			series       TEXT NOT NULL,
			date         DATE NOT NULL,
			date_label   TEXT NOT NULL,
			body         TEXT NOT NULL,
			retrieved_at TIMESTAMPTZ NOT NULL
		)`, s.table)
	if _, err := s.provider.DB().ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SaveDocument upserts one document, keyed by its source URL.
func (s *Store) SaveDocument(ctx context.Context, doc *domain.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (url, series, date, date_label, body, retrieved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (url) DO UPDATE SET
			series = EXCLUDED.series,
			date = EXCLUDED.date,
			date_label = EXCLUDED.date_label,
			body = EXCLUDED.body,
			retrieved_at = EXCLUDED.retrieved_at`, s.table)

	_, err := s.provider.DB().ExecContext(ctx, query,
		doc.URL, doc.Series, doc.Date, doc.DateLabel, doc.Text, doc.RetrievedAt)
	if err != nil {
		return fmt.Errorf("save document %s: %w", doc.URL, err)
	}
	return nil
}
