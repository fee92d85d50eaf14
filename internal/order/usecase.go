package order

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/order/dto"
)

type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.OrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)
	UpdateOrder(ctx context.Context, id string, input *dto.OrderInput) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error

	// AddToCart returns nil when the product has no stock left.
	AddToCart(ctx context.Context, productID string) (*model.Order, error)
}
