package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bakery owns zero or more baked goods. Timestamps are nil when the column is NULL.
type Bakery struct {
	ID        int64
	Name      string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

type BakedGood struct {
	ID        int64
	BakeryID  int64
	Name      string
	Price     decimal.Decimal
	CreatedAt *time.Time
	UpdatedAt *time.Time
}
