package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/vbonduro/bakeryapi/internal/domain"
)

type BakeryStore struct {
	db DBTX
}

func NewBakeryStore(db DBTX) *BakeryStore {
	return &BakeryStore{db: db}
}

// Create is used by seeding only; no HTTP route writes.
func (s *BakeryStore) Create(ctx context.Context, name string) (*domain.Bakery, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO bakeries (name) VALUES (?)
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create bakery: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID returns nil, nil when no bakery has the given id.
func (s *BakeryStore) GetByID(ctx context.Context, id int64) (*domain.Bakery, error) {
	bakery := &domain.Bakery{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at FROM bakeries WHERE id = ?
	`, id).Scan(&bakery.ID, &bakery.Name, &bakery.CreatedAt, &bakery.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bakery: %w", err)
	}

	return bakery, nil
}

func (s *BakeryStore) List(ctx context.Context) ([]*domain.Bakery, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at FROM bakeries ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bakeries: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	bakeries := []*domain.Bakery{}
	for rows.Next() {
		bakery := &domain.Bakery{}
		if err := rows.Scan(&bakery.ID, &bakery.Name, &bakery.CreatedAt, &bakery.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bakery: %w", err)
		}
		bakeries = append(bakeries, bakery)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bakeries: %w", err)
	}

	return bakeries, nil
}

// DeleteAll empties the table. Baked goods must be removed first.
func (s *BakeryStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM bakeries`); err != nil {
		return fmt.Errorf("failed to delete bakeries: %w", err)
	}
	return nil
}
