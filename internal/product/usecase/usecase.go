package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/inventory"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/product"
	"github.com/fekuna/omnipos-console/internal/product/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo      product.Repository
	inventory inventory.UseCase
	logger    logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, inv inventory.UseCase, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:      repo,
		inventory: inv,
		logger:    log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperr.Validation("name required")
	}
	if input.Stock < 0 {
		return nil, apperr.Validation("stock must not be negative")
	}
	if input.Price.IsNegative() {
		return nil, apperr.Validation("price must not be negative")
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.New().String()
	}
	unique, err := uc.repo.IsIDUnique(ctx, id)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperr.Validationf("product %s already exists", id)
	}

	var imageURL *string
	if input.ImageURL != "" {
		img := input.ImageURL
		imageURL = &img
	}

	p := &model.Product{
		ID:       id,
		Name:     input.Name,
		Category: input.Category,
		Battery:  input.Battery,
		Status:   input.Status,
		Alerts:   input.Alerts,
		LastSync: input.LastSync,
		Stock:    input.Stock,
		Active:   input.Active,
		Price:    input.Price,
		ImageURL: imageURL,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if p.Stock > 0 {
		uc.record(ctx, []model.StockMovement{{
			ProductID:      p.ID,
			MovementType:   model.MovementRestock,
			QuantityChange: p.Stock,
			QuantityAfter:  p.Stock,
			Notes:          "initial stock",
		}})
	}

	uc.logger.Info("product created", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product", id)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, apperr.Validation("name required")
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, apperr.Validation("stock must not be negative")
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, apperr.Validation("price must not be negative")
	}

	before, p, err := uc.repo.Update(ctx, input.ID, func(p *model.Product) error {
		applyUpdate(p, input)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if p.Stock != before.Stock {
		uc.record(ctx, []model.StockMovement{{
			ProductID:      p.ID,
			MovementType:   model.MovementManualAdjustment,
			QuantityChange: p.Stock - before.Stock,
			QuantityBefore: before.Stock,
			QuantityAfter:  p.Stock,
			Notes:          "product edit",
		}})
	}

	uc.logger.Info("product updated", zap.String("product_id", p.ID))
	return p, nil
}

// applyUpdate copies the fields set in input onto p.
func applyUpdate(p *model.Product, input *dto.UpdateProductInput) {
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Battery != nil {
		p.Battery = *input.Battery
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.Alerts != nil {
		p.Alerts = *input.Alerts
	}
	if input.LastSync != nil {
		p.LastSync = *input.LastSync
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if input.Active != nil {
		p.Active = *input.Active
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.ImageURL != nil {
		if *input.ImageURL == "" {
			p.ImageURL = nil
		} else {
			img := *input.ImageURL
			p.ImageURL = &img
		}
	}
}

// DeleteProduct does not touch orders; they keep a dangling product reference.
func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("product", id)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

func (uc *productUseCase) record(ctx context.Context, movements []model.StockMovement) {
	if err := uc.inventory.RecordMovements(ctx, movements); err != nil {
		uc.logger.Error("failed to record stock movement", zap.Error(err))
	}
}
