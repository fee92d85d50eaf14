package product

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	// Update runs edit on the stored product and saves the result in one step.
	// It returns the product as it was before and after the edit.
	Update(ctx context.Context, id string, edit func(p *model.Product) error) (before, after *model.Product, err error)
	Delete(ctx context.Context, id string) error

	IsIDUnique(ctx context.Context, id string) (bool, error)
}
