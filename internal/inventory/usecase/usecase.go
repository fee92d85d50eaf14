package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-console/internal/auth"
	"github.com/fekuna/omnipos-console/internal/inventory"
	"github.com/fekuna/omnipos-console/internal/inventory/dto"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/product"
	prodDto "github.com/fekuna/omnipos-console/internal/product/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo     inventory.Repository
	products product.Repository
	lowStock int
	now      func() time.Time
	logger   logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, products product.Repository, lowStock int, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:     repo,
		products: products,
		lowStock: lowStock,
		now:      time.Now,
		logger:   log,
	}
}

func (uc *inventoryUseCase) RecordMovements(ctx context.Context, movements []model.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}

	now := uc.now()
	createdBy := auth.GetUserEmail(ctx)
	for i := range movements {
		if movements[i].ID == "" {
			movements[i].ID = uuid.New().String()
		}
		if movements[i].CreatedAt.IsZero() {
			movements[i].CreatedAt = now
		}
		if movements[i].CreatedBy == "" {
			movements[i].CreatedBy = createdBy
		}
	}

	if err := uc.repo.LogMovements(ctx, movements); err != nil {
		return err
	}

	for _, m := range movements {
		uc.logger.Debug("stock movement",
			zap.String("product_id", m.ProductID),
			zap.String("type", string(m.MovementType)),
			zap.Int("change", m.QuantityChange),
			zap.Int("after", m.QuantityAfter),
			zap.String("reference_id", m.ReferenceID),
		)
	}
	return nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context) (*dto.StockLevels, error) {
	products, _, err := uc.products.FindAll(ctx, &prodDto.ProductFilters{})
	if err != nil {
		return nil, err
	}

	levels := &dto.StockLevels{
		LowStockThreshold: uc.lowStock,
		LowStock:          []model.Product{},
		OutOfStock:        []model.Product{},
	}
	for _, p := range products {
		switch {
		case p.Stock <= 0:
			levels.OutOfStock = append(levels.OutOfStock, p)
		case p.Stock <= uc.lowStock:
			levels.LowStock = append(levels.LowStock, p)
		}
	}
	return levels, nil
}
