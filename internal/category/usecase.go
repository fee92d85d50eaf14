package category

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/category/dto"
)

type UseCase interface {
	ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]dto.Category, error)
	RenameCategory(ctx context.Context, input *dto.RenameCategoryInput) (int, error)
}
