package usecase

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/order"
	orderDto "github.com/fekuna/omnipos-console/internal/order/dto"
	"github.com/fekuna/omnipos-console/internal/product"
	prodDto "github.com/fekuna/omnipos-console/internal/product/dto"
	"github.com/fekuna/omnipos-console/internal/report"
	"github.com/fekuna/omnipos-console/internal/report/dto"
	"go.uber.org/zap"
)

type reportUseCase struct {
	products product.Repository
	orders   order.Repository
	lowStock int
	logger   logger.ZapLogger
}

func NewReportUseCase(products product.Repository, orders order.Repository, lowStock int, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		products: products,
		orders:   orders,
		lowStock: lowStock,
		logger:   log,
	}
}

func (uc *reportUseCase) load(ctx context.Context) ([]model.Product, []model.Order, error) {
	products, _, err := uc.products.FindAll(ctx, &prodDto.ProductFilters{})
	if err != nil {
		return nil, nil, err
	}
	orders, _, err := uc.orders.FindAll(ctx, &orderDto.OrderFilters{})
	if err != nil {
		return nil, nil, err
	}
	return products, orders, nil
}

func (uc *reportUseCase) GetDashboard(ctx context.Context) (*dto.Dashboard, error) {
	products, orders, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("dashboard computed", zap.Int("products", len(products)), zap.Int("orders", len(orders)))
	return report.BuildDashboard(products, orders, uc.lowStock), nil
}

func (uc *reportUseCase) GetSummary(ctx context.Context) (*dto.Summary, error) {
	products, orders, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return report.BuildSummary(products, orders), nil
}
