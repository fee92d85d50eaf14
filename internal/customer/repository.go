package customer

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/customer/dto"
	"github.com/fekuna/omnipos-console/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindAll(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, int, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id string) error

	// NextID returns the next CUST-nnn id, never reusing one handed out before.
	NextID(ctx context.Context) (string, error)
}
