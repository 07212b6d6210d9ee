package postgres

import (
	"context"
	"fmt"

	"nexcraft-service/internal/domain/contact"
	xerrors "nexcraft-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// listLimit caps list reads, matching the original dashboard's cap.
const listLimit = 1000

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Insert(ctx context.Context, s *contact.Submission) error {
	query := `
		INSERT INTO contact_submissions
			(id, name, email, phone, service_interest, budget, message, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Phone, s.ServiceInterest, s.Budget, s.Message, s.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact submission: %w", err)
	}
	return nil
}

// List returns submissions sorted by timestamp descending.
func (r *ContactRepository) List(ctx context.Context) ([]contact.Submission, error) {
	query := `
		SELECT id, name, email, phone, service_interest, budget, message, submitted_at
		FROM contact_submissions
		ORDER BY submitted_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]contact.Submission, 0)
	for rows.Next() {
		var s contact.Submission
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.Phone,
			&s.ServiceInterest, &s.Budget, &s.Message, &s.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}

// Delete removes a submission by id, reporting ErrNotFound for unknown ids.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
