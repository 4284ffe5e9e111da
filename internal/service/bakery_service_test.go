package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/bakeryapi/internal/db"
	"github.com/vbonduro/bakeryapi/internal/domain"
	"github.com/vbonduro/bakeryapi/internal/store"
)

type testEnv struct {
	svc    *BakeryService
	bakery *store.BakeryStore
	goods  *store.BakedGoodStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	bakeries := store.NewBakeryStore(d)
	goods := store.NewBakedGoodStore(d)
	return &testEnv{
		svc:    NewBakeryService(bakeries, goods, slog.Default()),
		bakery: bakeries,
		goods:  goods,
	}
}

func TestBakeryServiceListBakeries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.bakery.Create(ctx, "Sweet Treats")
	require.NoError(t, err)
	_, err = env.bakery.Create(ctx, "Bread Box")
	require.NoError(t, err)

	bakeries, err := env.svc.ListBakeries(ctx)
	require.NoError(t, err)
	assert.Len(t, bakeries, 2)
}

func TestBakeryServiceGetBakery(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	bakery, err := env.bakery.Create(ctx, "Sweet Treats")
	require.NoError(t, err)
	_, err = env.goods.Create(ctx, bakery.ID, "Cupcake", decimal.NewFromInt(3))
	require.NoError(t, err)
	_, err = env.goods.Create(ctx, bakery.ID, "Cake", decimal.NewFromInt(15))
	require.NoError(t, err)

	detail, err := env.svc.GetBakery(ctx, bakery.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sweet Treats", detail.Name)
	require.Len(t, detail.BakedGoods, 2)
	assert.Equal(t, "Cupcake", detail.BakedGoods[0].Name)
	assert.Equal(t, "Cake", detail.BakedGoods[1].Name)
}

func TestBakeryServiceGetBakeryWithoutGoods(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	bakery, err := env.bakery.Create(ctx, "Empty Shelves")
	require.NoError(t, err)

	detail, err := env.svc.GetBakery(ctx, bakery.ID)
	require.NoError(t, err)
	assert.NotNil(t, detail.BakedGoods)
	assert.Empty(t, detail.BakedGoods)
}

func TestBakeryServiceGetBakeryNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.GetBakery(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBakeryNotFound)
}

func TestBakeryServiceListBakedGoodsByPrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	bakery, err := env.bakery.Create(ctx, "Sweet Treats")
	require.NoError(t, err)
	for _, price := range []int64{3, 15, 7} {
		_, err := env.goods.Create(ctx, bakery.ID, "Item", decimal.NewFromInt(price))
		require.NoError(t, err)
	}

	goods, err := env.svc.ListBakedGoodsByPrice(ctx)
	require.NoError(t, err)
	require.Len(t, goods, 3)
	assert.Equal(t, "15", goods[0].Price.String())
	assert.Equal(t, "7", goods[1].Price.String())
	assert.Equal(t, "3", goods[2].Price.String())
}

func TestBakeryServiceMostExpensiveBakedGood(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	bakery, err := env.bakery.Create(ctx, "Sweet Treats")
	require.NoError(t, err)
	_, err = env.goods.Create(ctx, bakery.ID, "Cupcake", decimal.NewFromInt(3))
	require.NoError(t, err)
	_, err = env.goods.Create(ctx, bakery.ID, "Cake", decimal.NewFromInt(15))
	require.NoError(t, err)

	good, err := env.svc.MostExpensiveBakedGood(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cake", good.Name)
}

func TestBakeryServiceMostExpensiveBakedGoodEmpty(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.MostExpensiveBakedGood(context.Background())
	assert.ErrorIs(t, err, ErrNoBakedGoods)
}

// failingGoods simulates a broken baked_goods table.
type failingGoods struct{ err error }

func (f failingGoods) ListByBakeryID(context.Context, int64) ([]*domain.BakedGood, error) {
	return nil, f.err
}

func (f failingGoods) ListByPriceDesc(context.Context) ([]*domain.BakedGood, error) {
	return nil, f.err
}

func (f failingGoods) GetMostExpensive(context.Context) (*domain.BakedGood, error) {
	return nil, f.err
}

func TestBakeryServicePropagatesStoreErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	bakery, err := env.bakery.Create(ctx, "Sweet Treats")
	require.NoError(t, err)

	svc := NewBakeryService(env.bakery, failingGoods{err: boom}, slog.Default())

	_, err = svc.GetBakery(ctx, bakery.ID)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrBakeryNotFound)

	_, err = svc.MostExpensiveBakedGood(ctx)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNoBakedGoods)

	_, err = svc.ListBakedGoodsByPrice(ctx)
	assert.ErrorIs(t, err, boom)
}
