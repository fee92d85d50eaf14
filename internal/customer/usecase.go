package customer

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/customer/dto"
	"github.com/fekuna/omnipos-console/internal/model"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, int, error)
	UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*model.Customer, error)
	Stats(ctx context.Context) (*dto.CustomerStats, error)
}
