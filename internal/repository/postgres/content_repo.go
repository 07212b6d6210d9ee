package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"nexcraft-service/internal/domain/content"
	xerrors "nexcraft-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentRepository stores the singleton website content document as a
// JSONB section map keyed by the document type tag.
type ContentRepository struct {
	db *pgxpool.Pool
}

func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

// Get returns the persisted document, or ErrNotFound when nothing has
// been written yet.
func (r *ContentRepository) Get(ctx context.Context) (*content.Document, error) {
	query := `SELECT sections FROM website_content WHERE doc_type = $1`

	var raw []byte
	err := r.db.QueryRow(ctx, query, content.DocumentType).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get website content: %w", err)
	}

	sections := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, fmt.Errorf("failed to decode website content: %w", err)
	}

	return &content.Document{Type: content.DocumentType, Sections: sections}, nil
}

// UpdateSection overwrites one named section atomically. If no document
// exists yet, one is created holding only that section; the other
// default sections are intentionally not backfilled.
func (r *ContentRepository) UpdateSection(ctx context.Context, section string, data json.RawMessage) error {
	query := `
		INSERT INTO website_content (doc_type, sections)
		VALUES ($1, jsonb_build_object($2::text, $3::jsonb))
		ON CONFLICT (doc_type)
		DO UPDATE SET sections = website_content.sections || EXCLUDED.sections
	`

	_, err := r.db.Exec(ctx, query, content.DocumentType, section, data)
	if err != nil {
		return fmt.Errorf("failed to update content section: %w", err)
	}
	return nil
}
