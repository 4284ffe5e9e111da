package seed

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/bakeryapi/internal/db"
	"github.com/vbonduro/bakeryapi/internal/store"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })
	return d
}

func countGoods(data []Bakery) int {
	n := 0
	for _, b := range data {
		n += len(b.Goods)
	}
	return n
}

func bakeryNames(t *testing.T, d *sql.DB) []string {
	t.Helper()
	bakeries, err := store.NewBakeryStore(d).List(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(bakeries))
	for _, b := range bakeries {
		names = append(names, b.Name)
	}
	return names
}

func fixtureNames() []string {
	names := make([]string, 0, len(Fixtures))
	for _, b := range Fixtures {
		names = append(names, b.Name)
	}
	return names
}

func TestRunFixtures(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	res, err := Run(ctx, d, Fixtures, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, len(Fixtures), res.Bakeries)
	assert.Equal(t, countGoods(Fixtures), res.BakedGoods)

	assert.Equal(t, fixtureNames(), bakeryNames(t, d))

	top, err := store.NewBakedGoodStore(d).GetMostExpensive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Celebration Cake", top.Name)
}

func TestRunReplacesExistingData(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	_, err := Run(ctx, d, Fixtures, slog.Default())
	require.NoError(t, err)

	small := []Bakery{{Name: "Only One", Goods: []Good{{Name: "Roll", Price: "1"}}}}
	res, err := Run(ctx, d, small, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, Result{Bakeries: 1, BakedGoods: 1}, res)

	assert.Equal(t, []string{"Only One"}, bakeryNames(t, d))

	all, err := store.NewBakedGoodStore(d).ListByPriceDesc(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Roll", all[0].Name)
}

func TestRunInvalidPriceKeepsExistingData(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	_, err := Run(ctx, d, Fixtures, slog.Default())
	require.NoError(t, err)

	res, err := Run(ctx, d,
		[]Bakery{{Name: "Bad Prices", Goods: []Good{{Name: "Mystery", Price: "cheap"}}}},
		slog.Default())
	assert.ErrorContains(t, err, "invalid price")
	assert.Equal(t, Result{}, res)

	assert.Equal(t, fixtureNames(), bakeryNames(t, d))
}

func TestRunInsertFailureRollsBack(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	_, err := Run(ctx, d, Fixtures, slog.Default())
	require.NoError(t, err)

	_, err = d.Exec(`
		CREATE TRIGGER reject_poison BEFORE INSERT ON baked_goods
		WHEN NEW.name = 'Poison'
		BEGIN
			SELECT RAISE(ABORT, 'rejected');
		END;
	`)
	require.NoError(t, err)

	res, err := Run(ctx, d, []Bakery{
		{Name: "First", Goods: []Good{{Name: "Roll", Price: "1"}}},
		{Name: "Second", Goods: []Good{{Name: "Poison", Price: "2"}}},
	}, slog.Default())
	assert.ErrorContains(t, err, "Poison")
	assert.Equal(t, Result{}, res)

	assert.Equal(t, fixtureNames(), bakeryNames(t, d))
	goods, err := store.NewBakedGoodStore(d).ListByPriceDesc(ctx)
	require.NoError(t, err)
	assert.Len(t, goods, countGoods(Fixtures))
}
