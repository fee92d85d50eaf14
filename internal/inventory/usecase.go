package inventory

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/inventory/dto"
	"github.com/fekuna/omnipos-console/internal/model"
)

type UseCase interface {
	RecordMovements(ctx context.Context, movements []model.StockMovement) error
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)
	ListLowStock(ctx context.Context) (*dto.StockLevels, error)
}
