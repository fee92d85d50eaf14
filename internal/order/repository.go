package order

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/order/dto"
	"github.com/fekuna/omnipos-console/internal/order/reconcile"
)

// ReconcileFunc computes the next products and orders from the current ones.
type ReconcileFunc func(products []model.Product, orders []model.Order) (reconcile.Result, error)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)

	// Reconcile stores the products and orders returned by fn together, or
	// nothing if fn fails.
	Reconcile(ctx context.Context, fn ReconcileFunc) (reconcile.Result, error)
}
