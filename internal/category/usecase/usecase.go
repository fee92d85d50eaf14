package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/category"
	"github.com/fekuna/omnipos-console/internal/category/dto"
	"github.com/fekuna/omnipos-console/internal/logger"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]dto.Category, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *categoryUseCase) RenameCategory(ctx context.Context, input *dto.RenameCategoryInput) (int, error) {
	from := strings.TrimSpace(input.From)
	to := strings.TrimSpace(input.To)
	if from == "" || to == "" {
		return 0, apperr.Validation("category name required")
	}

	changed, err := uc.repo.Rename(ctx, from, to)
	if err != nil {
		return 0, err
	}
	if changed == 0 {
		return 0, apperr.NotFound("category", from)
	}

	uc.logger.Info("category renamed", zap.String("from", from), zap.String("to", to), zap.Int("products", changed))
	return changed, nil
}
