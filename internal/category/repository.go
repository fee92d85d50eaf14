package category

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/category/dto"
)

// Categories are not stored on their own; they are read off the catalog.
type Repository interface {
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]dto.Category, error)
	Rename(ctx context.Context, from, to string) (int, error)
}
