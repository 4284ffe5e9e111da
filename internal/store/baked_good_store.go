package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/bakeryapi/internal/domain"
)

const bakedGoodColumns = `id, bakery_id, name, price, created_at, updated_at`

type BakedGoodStore struct {
	db DBTX
}

func NewBakedGoodStore(db DBTX) *BakedGoodStore {
	return &BakedGoodStore{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBakedGood(row rowScanner) (*domain.BakedGood, error) {
	good := &domain.BakedGood{}
	err := row.Scan(&good.ID, &good.BakeryID, &good.Name, &good.Price, &good.CreatedAt, &good.UpdatedAt)
	return good, err
}

// Create is used by seeding only; no HTTP route writes.
func (s *BakedGoodStore) Create(ctx context.Context, bakeryID int64, name string, price decimal.Decimal) (*domain.BakedGood, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO baked_goods (bakery_id, name, price) VALUES (?, ?, ?)
	`, bakeryID, name, price)
	if err != nil {
		return nil, fmt.Errorf("failed to create baked good: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *BakedGoodStore) GetByID(ctx context.Context, id int64) (*domain.BakedGood, error) {
	good, err := scanBakedGood(s.db.QueryRowContext(ctx, `
		SELECT `+bakedGoodColumns+` FROM baked_goods WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get baked good: %w", err)
	}

	return good, nil
}

func (s *BakedGoodStore) ListByBakeryID(ctx context.Context, bakeryID int64) ([]*domain.BakedGood, error) {
	return s.list(ctx, "list baked goods for bakery", `
		SELECT `+bakedGoodColumns+` FROM baked_goods
		WHERE bakery_id = ? ORDER BY id ASC
	`, bakeryID)
}

// ListByPriceDesc orders by price, highest first. Equal prices keep id order.
func (s *BakedGoodStore) ListByPriceDesc(ctx context.Context) ([]*domain.BakedGood, error) {
	return s.list(ctx, "list baked goods by price", `
		SELECT `+bakedGoodColumns+` FROM baked_goods
		ORDER BY price DESC, id ASC
	`)
}

// GetMostExpensive returns the first row of ListByPriceDesc, or nil, nil
// when the table is empty.
func (s *BakedGoodStore) GetMostExpensive(ctx context.Context) (*domain.BakedGood, error) {
	good, err := scanBakedGood(s.db.QueryRowContext(ctx, `
		SELECT `+bakedGoodColumns+` FROM baked_goods
		ORDER BY price DESC, id ASC LIMIT 1
	`))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get most expensive baked good: %w", err)
	}

	return good, nil
}

func (s *BakedGoodStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM baked_goods`); err != nil {
		return fmt.Errorf("failed to delete baked goods: %w", err)
	}
	return nil
}

func (s *BakedGoodStore) list(ctx context.Context, op, query string, args ...any) ([]*domain.BakedGood, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	goods := []*domain.BakedGood{}
	for rows.Next() {
		good, err := scanBakedGood(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan baked good: %w", err)
		}
		goods = append(goods, good)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating baked goods: %w", err)
	}

	return goods, nil
}
