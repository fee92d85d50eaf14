package usecase

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/inventory"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/order"
	"github.com/fekuna/omnipos-console/internal/order/dto"
	"github.com/fekuna/omnipos-console/internal/order/reconcile"
	"go.uber.org/zap"
)

type orderUseCase struct {
	repo      order.Repository
	inventory inventory.UseCase
	policy    reconcile.Policy
	logger    logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, inv inventory.UseCase, policy reconcile.Policy, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		inventory: inv,
		policy:    policy,
		logger:    log,
	}
}

func draftFromInput(input *dto.OrderInput) reconcile.Draft {
	return reconcile.Draft{
		CustomerName: input.CustomerName,
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		UnitPrice:    input.UnitPrice,
		Status:       input.Status,
		Date:         input.Date,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.OrderInput) (*model.Order, error) {
	var before []model.Product
	res, err := uc.repo.Reconcile(ctx, func(products []model.Product, orders []model.Order) (reconcile.Result, error) {
		before = products
		return reconcile.Create(draftFromInput(input), products, orders, uc.policy)
	})
	if err != nil {
		uc.logger.Warn("order rejected",
			zap.String("product_id", input.ProductID),
			zap.Int("quantity", input.Quantity),
			zap.Error(err),
		)
		return nil, err
	}

	uc.record(ctx, inventory.DiffStock(before, res.Products, model.MovementSale, res.Order.ID, "order created"))
	uc.logger.Info("order created",
		zap.String("order_id", res.Order.ID),
		zap.String("product_id", res.Order.ProductID),
		zap.Int("quantity", res.Order.Quantity),
		zap.String("total", res.Order.TotalPrice.StringFixed(2)),
	)
	return res.Order, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFound("order", id)
	}
	return o, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *orderUseCase) UpdateOrder(ctx context.Context, id string, input *dto.OrderInput) (*model.Order, error) {
	var before []model.Product
	res, err := uc.repo.Reconcile(ctx, func(products []model.Product, orders []model.Order) (reconcile.Result, error) {
		before = products
		return reconcile.Update(id, draftFromInput(input), products, orders, uc.policy)
	})
	if err != nil {
		uc.logger.Warn("order update rejected", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}

	uc.record(ctx, inventory.DiffStock(before, res.Products, model.MovementSaleEdit, id, "order updated"))
	uc.logger.Info("order updated",
		zap.String("order_id", id),
		zap.String("product_id", res.Order.ProductID),
		zap.Int("quantity", res.Order.Quantity),
		zap.String("status", string(res.Order.Status)),
	)
	return res.Order, nil
}

func (uc *orderUseCase) DeleteOrder(ctx context.Context, id string) error {
	var before []model.Product
	res, err := uc.repo.Reconcile(ctx, func(products []model.Product, orders []model.Order) (reconcile.Result, error) {
		before = products
		return reconcile.Delete(id, products, orders, uc.policy)
	})
	if err != nil {
		return err
	}

	uc.record(ctx, inventory.DiffStock(before, res.Products, model.MovementOrderDelete, id, "order deleted"))
	uc.logger.Info("order deleted",
		zap.String("order_id", id),
		zap.Bool("stock_restored", uc.policy.RestoreStockOnDelete),
	)
	return nil
}

func (uc *orderUseCase) AddToCart(ctx context.Context, productID string) (*model.Order, error) {
	var before []model.Product
	res, err := uc.repo.Reconcile(ctx, func(products []model.Product, orders []model.Order) (reconcile.Result, error) {
		i := model.FindProduct(products, productID)
		if i < 0 {
			return reconcile.Result{}, apperr.NotFound("product", productID)
		}
		before = products
		p := products[i]
		return reconcile.AddToCart(&p, products, orders, uc.policy), nil
	})
	if err != nil {
		return nil, err
	}
	if res.Order == nil {
		uc.logger.Debug("add to cart skipped, no stock", zap.String("product_id", productID))
		return nil, nil
	}

	uc.record(ctx, inventory.DiffStock(before, res.Products, model.MovementCart, res.Order.ID, "added to cart"))
	uc.logger.Info("added to cart",
		zap.String("order_id", res.Order.ID),
		zap.String("product_id", productID),
		zap.Int("quantity", res.Order.Quantity),
	)
	return res.Order, nil
}

func (uc *orderUseCase) record(ctx context.Context, movements []model.StockMovement) {
	if err := uc.inventory.RecordMovements(ctx, movements); err != nil {
		uc.logger.Error("failed to record stock movement", zap.Error(err))
	}
}
