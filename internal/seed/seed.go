// Package seed loads a fixed set of bakeries and baked goods for local
// development and demos.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/bakeryapi/internal/store"
)

// Good is a baked good in the fixture set. Price is a decimal literal.
type Good struct {
	Name  string
	Price string
}

// Bakery is a bakery in the fixture set together with the goods it sells.
type Bakery struct {
	Name  string
	Goods []Good
}

// Fixtures is the data Run inserts.
var Fixtures = []Bakery{
	{Name: "Sweet Treats", Goods: []Good{
		{Name: "Cupcake", Price: "3"},
		{Name: "Cake", Price: "15"},
	}},
	{Name: "Delightful Donuts", Goods: []Good{
		{Name: "Chocolate Dipped Donut", Price: "2.75"},
		{Name: "Apple-Spice Filled Donut", Price: "3.5"},
		{Name: "Glazed Honey Cruller", Price: "3.25"},
	}},
	{Name: "Incredible Crullers", Goods: []Good{
		{Name: "Crème Brûlée Cruller", Price: "4.5"},
		{Name: "Strawberry Cruller", Price: "4"},
	}},
	{Name: "Bread Box", Goods: []Good{
		{Name: "Sourdough Loaf", Price: "8"},
		{Name: "Baguette", Price: "4.5"},
		{Name: "Rye Bread", Price: "7.25"},
		{Name: "Celebration Cake", Price: "42"},
	}},
	{Name: "Empty Shelves"},
}

// Result reports how many rows Run inserted.
type Result struct {
	Bakeries   int
	BakedGoods int
}

// Run replaces the contents of both tables with data inside a single
// transaction. Any failure rolls back, leaving the previous rows intact.
func Run(ctx context.Context, database *sql.DB, data []Bakery, logger *slog.Logger) (res Result, err error) {
	prices, err := parsePrices(data)
	if err != nil {
		return res, err
	}

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rerr := tx.Rollback(); rerr != nil {
			logger.Error("failed to roll back seed", "error", rerr)
		}
		res = Result{}
	}()

	bakeries := store.NewBakeryStore(tx)
	goods := store.NewBakedGoodStore(tx)

	// Baked goods go first so the foreign key holds throughout.
	if err := goods.DeleteAll(ctx); err != nil {
		return res, err
	}
	if err := bakeries.DeleteAll(ctx); err != nil {
		return res, err
	}

	for i, b := range data {
		bakery, err := bakeries.Create(ctx, b.Name)
		if err != nil {
			return res, fmt.Errorf("failed to seed bakery %q: %w", b.Name, err)
		}
		res.Bakeries++

		for j, g := range b.Goods {
			if _, err := goods.Create(ctx, bakery.ID, g.Name, prices[i][j]); err != nil {
				return res, fmt.Errorf("failed to seed baked good %q: %w", g.Name, err)
			}
			res.BakedGoods++
		}
		logger.Debug("seeded bakery", "bakery_id", bakery.ID, "name", bakery.Name, "baked_goods", len(b.Goods))
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("failed to commit seed: %w", err)
	}

	logger.Info("seed complete", "bakeries", res.Bakeries, "baked_goods", res.BakedGoods)
	return res, nil
}

// parsePrices validates every price up front, indexed like data.
func parsePrices(data []Bakery) ([][]decimal.Decimal, error) {
	prices := make([][]decimal.Decimal, len(data))
	for i, b := range data {
		prices[i] = make([]decimal.Decimal, len(b.Goods))
		for j, g := range b.Goods {
			price, err := decimal.NewFromString(g.Price)
			if err != nil {
				return nil, fmt.Errorf("invalid price %q for %q: %w", g.Price, g.Name, err)
			}
			prices[i][j] = price
		}
	}
	return prices, nil
}
