package inventory

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/inventory/dto"
	"github.com/fekuna/omnipos-console/internal/model"
)

// Repository is the append-only stock movement ledger.
type Repository interface {
	LogMovements(ctx context.Context, movements []model.StockMovement) error
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)
}
