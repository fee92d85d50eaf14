package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/auth"
	"github.com/fekuna/omnipos-console/internal/inventory"
	invDto "github.com/fekuna/omnipos-console/internal/inventory/dto"
	invRepo "github.com/fekuna/omnipos-console/internal/inventory/repository"
	invUC "github.com/fekuna/omnipos-console/internal/inventory/usecase"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/order"
	"github.com/fekuna/omnipos-console/internal/order/dto"
	"github.com/fekuna/omnipos-console/internal/order/reconcile"
	orderRepo "github.com/fekuna/omnipos-console/internal/order/repository"
	prodRepo "github.com/fekuna/omnipos-console/internal/product/repository"
	"github.com/fekuna/omnipos-console/internal/store"
)

type fixture struct {
	store *store.Store
	inv   inventory.UseCase
	uc    order.UseCase
}

func newFixture(t *testing.T, restoreOnDelete bool) *fixture {
	t.Helper()
	st := store.New(store.Snapshot{
		Products: []model.Product{
			{ID: "P1", Name: "Cold Chain Sensor", Stock: 5, Price: decimal.NewFromInt(10)},
			{ID: "P2", Name: "GPS Tag", Stock: 1, Price: decimal.RequireFromString("4.50")},
		},
	})
	log := logger.NewNop()
	inv := invUC.NewInventoryUseCase(invRepo.NewMemoryRepository(), prodRepo.NewMemoryRepository(st), 2, log)

	policy := reconcile.Policy{
		IDs:                  &reconcile.MonotonicIDs{},
		RestoreStockOnDelete: restoreOnDelete,
		GuestCustomerName:    "Guest Customer",
		Today:                func() string { return "2026-10-18" },
	}
	return &fixture{
		store: st,
		inv:   inv,
		uc:    NewOrderUseCase(orderRepo.NewMemoryRepository(st), inv, policy, log),
	}
}

func (f *fixture) stock(id string) int {
	products := f.store.View().Products
	return products[model.FindProduct(products, id)].Stock
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t, false)
	ctx := auth.WithUser(context.Background(), &auth.UserContext{Email: "admin@example.com"})

	o, err := f.uc.CreateOrder(ctx, &dto.OrderInput{CustomerName: "Noura", ProductID: "P1", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "ORD-001", o.ID)
	assert.Equal(t, 3, f.stock("P1"))

	movements, count, err := f.inv.ListMovements(ctx, &invDto.MovementFilters{ReferenceID: "ORD-001"})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	assert.Equal(t, model.MovementSale, movements[0].MovementType)
	assert.Equal(t, -2, movements[0].QuantityChange)
	assert.Equal(t, "admin@example.com", movements[0].CreatedBy)
	assert.NotEmpty(t, movements[0].ID)
}

func TestCreateOrderRejectedLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	before := f.store.View()

	_, err := f.uc.CreateOrder(ctx, &dto.OrderInput{ProductID: "P2", Quantity: 2})
	assert.True(t, apperr.HasReason(err, apperr.ReasonInsufficientStock))
	assert.Equal(t, before, f.store.View())

	_, count, err := f.inv.ListMovements(ctx, &invDto.MovementFilters{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdateOrderReassign(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.uc.CreateOrder(ctx, &dto.OrderInput{ProductID: "P1", Quantity: 3})
	require.NoError(t, err)

	o, err := f.uc.UpdateOrder(ctx, "ORD-001", &dto.OrderInput{ProductID: "P2", Quantity: 1, Status: model.OrderProcessing})
	require.NoError(t, err)
	assert.Equal(t, "GPS Tag", o.ProductName)
	assert.Equal(t, model.OrderProcessing, o.Status)
	assert.Equal(t, "4.50", o.TotalPrice.StringFixed(2))
	assert.Equal(t, 5, f.stock("P1"))
	assert.Equal(t, 0, f.stock("P2"))

	movements, _, err := f.inv.ListMovements(ctx, &invDto.MovementFilters{MovementType: string(model.MovementSaleEdit)})
	require.NoError(t, err)
	assert.Len(t, movements, 2)

	_, err = f.uc.UpdateOrder(ctx, "ORD-404", &dto.OrderInput{ProductID: "P1", Quantity: 1})
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteOrderPolicies(t *testing.T) {
	ctx := context.Background()

	keep := newFixture(t, false)
	_, err := keep.uc.CreateOrder(ctx, &dto.OrderInput{ProductID: "P1", Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, keep.uc.DeleteOrder(ctx, "ORD-001"))
	assert.Equal(t, 3, keep.stock("P1"))
	assert.Empty(t, keep.store.View().Orders)

	restore := newFixture(t, true)
	_, err = restore.uc.CreateOrder(ctx, &dto.OrderInput{ProductID: "P1", Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, restore.uc.DeleteOrder(ctx, "ORD-001"))
	assert.Equal(t, 5, restore.stock("P1"))

	assert.True(t, apperr.IsNotFound(restore.uc.DeleteOrder(ctx, "ORD-001")))
}

func TestAddToCart(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	o, err := f.uc.AddToCart(ctx, "P2")
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, "Guest Customer", o.CustomerName)
	assert.Equal(t, 0, f.stock("P2"))

	o, err = f.uc.AddToCart(ctx, "P2")
	require.NoError(t, err)
	assert.Nil(t, o, "no stock left")
	assert.Len(t, f.store.View().Orders, 1)

	_, err = f.uc.AddToCart(ctx, "P404")
	assert.True(t, apperr.IsNotFound(err))
}

func TestListOrders(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.uc.CreateOrder(ctx, &dto.OrderInput{CustomerName: "Noura", ProductID: "P1", Quantity: 1})
	require.NoError(t, err)
	_, err = f.uc.CreateOrder(ctx, &dto.OrderInput{CustomerName: "Faisal", ProductID: "P1", Quantity: 3, Status: model.OrderCompleted})
	require.NoError(t, err)

	orders, count, err := f.uc.ListOrders(ctx, &dto.OrderFilters{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "Faisal", orders[0].CustomerName)

	orders, _, err = f.uc.ListOrders(ctx, &dto.OrderFilters{SortBy: "total", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "ORD-002", orders[0].ID)

	got, err := f.uc.GetOrder(ctx, "ORD-001")
	require.NoError(t, err)
	assert.Equal(t, "Noura", got.CustomerName)
}
