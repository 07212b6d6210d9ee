package postgres

import (
	"context"
	"fmt"

	"nexcraft-service/internal/domain/status"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatusRepository struct {
	db *pgxpool.Pool
}

func NewStatusRepository(db *pgxpool.Pool) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) Insert(ctx context.Context, c *status.Check) error {
	query := `
		INSERT INTO status_checks (id, client_name, checked_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, c.ID, c.ClientName, c.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert status check: %w", err)
	}
	return nil
}

func (r *StatusRepository) List(ctx context.Context) ([]status.Check, error) {
	query := `
		SELECT id, client_name, checked_at
		FROM status_checks
		ORDER BY checked_at
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	defer rows.Close()

	checks := make([]status.Check, 0)
	for rows.Next() {
		var c status.Check
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan status check: %w", err)
		}
		checks = append(checks, c)
	}

	return checks, rows.Err()
}
