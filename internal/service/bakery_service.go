package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vbonduro/bakeryapi/internal/domain"
)

var (
	ErrBakeryNotFound = errors.New("bakery not found")
	ErrNoBakedGoods   = errors.New("no baked goods found")
)

// bakeryRepository is the subset of store.BakeryStore that BakeryService requires.
type bakeryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Bakery, error)
	List(ctx context.Context) ([]*domain.Bakery, error)
}

// bakedGoodRepository is the subset of store.BakedGoodStore that BakeryService requires.
type bakedGoodRepository interface {
	ListByBakeryID(ctx context.Context, bakeryID int64) ([]*domain.BakedGood, error)
	ListByPriceDesc(ctx context.Context) ([]*domain.BakedGood, error)
	GetMostExpensive(ctx context.Context) (*domain.BakedGood, error)
}

type BakeryService struct {
	bakeryStore    bakeryRepository
	bakedGoodStore bakedGoodRepository
	logger         *slog.Logger
}

func NewBakeryService(bakeryStore bakeryRepository, bakedGoodStore bakedGoodRepository, logger *slog.Logger) *BakeryService {
	return &BakeryService{
		bakeryStore:    bakeryStore,
		bakedGoodStore: bakedGoodStore,
		logger:         logger,
	}
}

func (s *BakeryService) ListBakeries(ctx context.Context) ([]*domain.Bakery, error) {
	return s.bakeryStore.List(ctx)
}

// BakeryDetail bundles a bakery with the goods it owns.
type BakeryDetail struct {
	*domain.Bakery
	BakedGoods []*domain.BakedGood
}

// GetBakery returns ErrBakeryNotFound when no bakery has the given id.
func (s *BakeryService) GetBakery(ctx context.Context, id int64) (*BakeryDetail, error) {
	bakery, err := s.bakeryStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get bakery: %w", err)
	}
	if bakery == nil {
		return nil, ErrBakeryNotFound
	}

	goods, err := s.bakedGoodStore.ListByBakeryID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list baked goods for bakery %d: %w", id, err)
	}
	s.logger.Debug("bakery loaded", "bakery_id", id, "baked_goods", len(goods))

	return &BakeryDetail{Bakery: bakery, BakedGoods: goods}, nil
}

func (s *BakeryService) ListBakedGoodsByPrice(ctx context.Context) ([]*domain.BakedGood, error) {
	return s.bakedGoodStore.ListByPriceDesc(ctx)
}

// MostExpensiveBakedGood returns ErrNoBakedGoods when there is nothing to rank.
func (s *BakeryService) MostExpensiveBakedGood(ctx context.Context) (*domain.BakedGood, error) {
	good, err := s.bakedGoodStore.GetMostExpensive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get most expensive baked good: %w", err)
	}
	if good == nil {
		return nil, ErrNoBakedGoods
	}
	return good, nil
}
