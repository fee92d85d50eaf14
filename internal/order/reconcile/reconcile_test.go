package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/model"
)

func fixedPolicy() Policy {
	return Policy{
		IDs:               LengthIDs{},
		GuestCustomerName: "Guest Customer",
		Today:             func() string { return "2026-10-18" },
	}
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func catalog() []model.Product {
	return []model.Product{
		{ID: "A", Name: "Tracker A", Stock: 10, Price: dec("12.50")},
		{ID: "B", Name: "Tracker B", Stock: 5, Price: dec("20")},
	}
}

func stockOf(t *testing.T, products []model.Product, id string) int {
	t.Helper()
	i := model.FindProduct(products, id)
	require.GreaterOrEqual(t, i, 0, "product %s missing", id)
	return products[i].Stock
}

func TestCreate_Scenario(t *testing.T) {
	products := []model.Product{{ID: "P1", Name: "Sensor", Stock: 5, Price: dec("10")}}

	res, err := Create(Draft{ProductID: "P1", Quantity: 2}, products, nil, fixedPolicy())
	require.NoError(t, err)

	assert.Equal(t, 3, res.Products[0].Stock)
	require.Len(t, res.Orders, 1)
	o := res.Orders[0]
	assert.Equal(t, "ORD-001", o.ID)
	assert.Equal(t, "P1", o.ProductID)
	assert.Equal(t, "Sensor", o.ProductName)
	assert.Equal(t, 2, o.Quantity)
	assert.True(t, o.UnitPrice.Equal(dec("10")))
	assert.True(t, o.TotalPrice.Equal(dec("20")))
	assert.Equal(t, model.OrderPending, o.Status)
	assert.Equal(t, "2026-10-18", o.Date)

	assert.Equal(t, 5, products[0].Stock, "input must not be modified")
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		draft  Draft
		reason string
	}{
		{"missing product", Draft{Quantity: 1}, apperr.ReasonProductRequired},
		{"blank product", Draft{ProductID: "  ", Quantity: 1}, apperr.ReasonProductRequired},
		{"unknown product", Draft{ProductID: "Z", Quantity: 1}, apperr.ReasonProductNotFound},
		{"insufficient stock", Draft{ProductID: "B", Quantity: 6}, apperr.ReasonInsufficientStock},
		{"zero quantity", Draft{ProductID: "B", Quantity: 0}, "invalid quantity"},
		{"bad status", Draft{ProductID: "B", Quantity: 1, Status: "Shipped"}, `invalid status "Shipped"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := catalog()
			orders := []model.Order{{ID: "ORD-001", ProductID: "A", Quantity: 1}}

			res, err := Create(tt.draft, products, orders, fixedPolicy())
			require.Error(t, err)
			assert.True(t, apperr.HasReason(err, tt.reason), "got %v", err)
			assert.Nil(t, res.Products)
			assert.Nil(t, res.Orders)
			assert.Equal(t, catalog(), products)
			assert.Len(t, orders, 1)
		})
	}
}

func TestCreate_ExactStockReachesZero(t *testing.T) {
	res, err := Create(Draft{ProductID: "B", Quantity: 5}, catalog(), nil, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, 0, stockOf(t, res.Products, "B"))
}

func TestCreate_TotalIsRounded(t *testing.T) {
	products := []model.Product{{ID: "P", Name: "P", Stock: 10, Price: dec("3.335")}}

	res, err := Create(Draft{ProductID: "P", Quantity: 3}, products, nil, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, "10.01", res.Order.TotalPrice.StringFixed(2))
}

func TestUpdate_StatusOnlyKeepsStock(t *testing.T) {
	products := catalog()
	created, err := Create(Draft{ProductID: "A", Quantity: 3, CustomerName: "Noura"}, products, nil, fixedPolicy())
	require.NoError(t, err)

	res, err := Update("ORD-001", Draft{ProductID: "A", Quantity: 3, Status: model.OrderCompleted},
		created.Products, created.Orders, fixedPolicy())
	require.NoError(t, err)

	assert.Equal(t, created.Products, res.Products)
	assert.Equal(t, model.OrderCompleted, res.Orders[0].Status)
	assert.Equal(t, "Noura", res.Orders[0].CustomerName)
	assert.Equal(t, "ORD-001", res.Orders[0].ID)
}

func TestUpdate_KeepsPriceWhenProductUnchanged(t *testing.T) {
	products := catalog()
	orders := []model.Order{{ID: "ORD-001", ProductID: "A", Quantity: 2, UnitPrice: dec("10"), TotalPrice: dec("20"), Status: model.OrderPending}}
	products[0].Price = dec("200")

	res, err := Update("ORD-001", Draft{ProductID: "A", Quantity: 2, Status: model.OrderProcessing}, products, orders, fixedPolicy())
	require.NoError(t, err)
	assert.True(t, res.Order.UnitPrice.Equal(dec("10")))
	assert.True(t, res.Order.TotalPrice.Equal(dec("20")))
	assert.Equal(t, model.OrderProcessing, res.Order.Status)

	res, err = Update("ORD-001", Draft{ProductID: "A", Quantity: 3}, products, orders, fixedPolicy())
	require.NoError(t, err)
	assert.True(t, res.Order.TotalPrice.Equal(dec("30")), "quantity change keeps the order's price")
}

func TestUpdate_SameProductUsesReleasedQuantity(t *testing.T) {
	products := []model.Product{{ID: "A", Name: "A", Stock: 2, Price: dec("1")}}
	orders := []model.Order{{ID: "ORD-001", ProductID: "A", Quantity: 3, UnitPrice: dec("1"), TotalPrice: dec("3"), Status: model.OrderPending}}

	res, err := Update("ORD-001", Draft{ProductID: "A", Quantity: 5}, products, orders, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Products[0].Stock)
	assert.Equal(t, 5, res.Orders[0].Quantity)
	assert.True(t, res.Orders[0].TotalPrice.Equal(dec("5")))

	_, err = Update("ORD-001", Draft{ProductID: "A", Quantity: 6}, products, orders, fixedPolicy())
	assert.True(t, apperr.HasReason(err, apperr.ReasonInsufficientStock))
}

func TestUpdate_SameProductDecrease(t *testing.T) {
	products := []model.Product{{ID: "A", Name: "A", Stock: 4, Price: dec("1")}}
	orders := []model.Order{{ID: "ORD-001", ProductID: "A", Quantity: 3}}

	res, err := Update("ORD-001", Draft{ProductID: "A", Quantity: 1}, products, orders, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, 6, res.Products[0].Stock)
}

func TestUpdate_ReassignProduct(t *testing.T) {
	products := []model.Product{
		{ID: "A", Name: "A", Stock: 7, Price: dec("2")},
		{ID: "B", Name: "B", Stock: 5, Price: dec("4")},
	}
	orders := []model.Order{{ID: "ORD-001", ProductID: "A", ProductName: "A", Quantity: 3}}

	res, err := Update("ORD-001", Draft{ProductID: "B", Quantity: 4}, products, orders, fixedPolicy())
	require.NoError(t, err)

	assert.Equal(t, 10, stockOf(t, res.Products, "A"))
	assert.Equal(t, 1, stockOf(t, res.Products, "B"))
	// measured from before ORD-001 held its 3 units of A
	assert.Equal(t, 7+3+5-4, stockOf(t, res.Products, "A")+stockOf(t, res.Products, "B"))
	assert.Equal(t, "B", res.Orders[0].ProductName)
	assert.True(t, res.Orders[0].UnitPrice.Equal(dec("4")))
	assert.True(t, res.Orders[0].TotalPrice.Equal(dec("16")))
}

func TestUpdate_ReassignDoesNotBorrowPriorQuantity(t *testing.T) {
	products := []model.Product{
		{ID: "A", Name: "A", Stock: 0, Price: dec("2")},
		{ID: "B", Name: "B", Stock: 5, Price: dec("4")},
	}
	orders := []model.Order{{ID: "ORD-001", ProductID: "A", Quantity: 3}}

	_, err := Update("ORD-001", Draft{ProductID: "B", Quantity: 6}, products, orders, fixedPolicy())
	assert.True(t, apperr.HasReason(err, apperr.ReasonInsufficientStock))
}

func TestUpdate_PriorProductDeleted(t *testing.T) {
	products := []model.Product{{ID: "B", Name: "B", Stock: 5, Price: dec("4")}}
	orders := []model.Order{{ID: "ORD-001", ProductID: "GONE", Quantity: 3}}

	res, err := Update("ORD-001", Draft{ProductID: "B", Quantity: 2}, products, orders, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Products[0].Stock)
}

func TestUpdate_SubmittedUnitPrice(t *testing.T) {
	price := dec("9.99")
	products := catalog()
	orders := []model.Order{{ID: "ORD-001", ProductID: "A", Quantity: 1}}

	res, err := Update("ORD-001", Draft{ProductID: "A", Quantity: 3, UnitPrice: &price}, products, orders, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, "29.97", res.Order.TotalPrice.StringFixed(2))
}

func TestUpdate_Errors(t *testing.T) {
	products := catalog()
	orders := []model.Order{{ID: "ORD-001", ProductID: "A", Quantity: 1}}

	_, err := Update("ORD-404", Draft{ProductID: "A", Quantity: 1}, products, orders, fixedPolicy())
	assert.True(t, apperr.IsNotFound(err))

	_, err = Update("ORD-001", Draft{Quantity: 1}, products, orders, fixedPolicy())
	assert.True(t, apperr.HasReason(err, apperr.ReasonProductRequired))

	_, err = Update("ORD-001", Draft{ProductID: "Z", Quantity: 1}, products, orders, fixedPolicy())
	assert.True(t, apperr.HasReason(err, apperr.ReasonProductNotFound))

	assert.Equal(t, catalog(), products)
}

func TestDelete(t *testing.T) {
	products := catalog()
	orders := []model.Order{
		{ID: "ORD-001", ProductID: "A", Quantity: 2},
		{ID: "ORD-002", ProductID: "B", Quantity: 1},
	}

	res, err := Delete("ORD-001", products, orders, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, []model.Order{{ID: "ORD-002", ProductID: "B", Quantity: 1}}, res.Orders)
	assert.Equal(t, 10, stockOf(t, res.Products, "A"), "stock is kept by default")
	assert.Len(t, orders, 2)

	_, err = Delete("ORD-404", products, orders, fixedPolicy())
	assert.True(t, apperr.IsNotFound(err))
}

func TestDelete_RestoreStockPolicy(t *testing.T) {
	p := fixedPolicy()
	p.RestoreStockOnDelete = true
	products := catalog()
	orders := []model.Order{{ID: "ORD-001", ProductID: "A", Quantity: 2}}

	res, err := Delete("ORD-001", products, orders, p)
	require.NoError(t, err)
	assert.Equal(t, 12, stockOf(t, res.Products, "A"))
	assert.Equal(t, 10, stockOf(t, products, "A"))
}

func TestAddToCart_TwiceOnLastUnit(t *testing.T) {
	product := model.Product{ID: "P1", Name: "Sensor", Stock: 1, Price: dec("7.25")}
	products := []model.Product{product}

	first := AddToCart(&product, products, nil, fixedPolicy())
	require.NotNil(t, first.Order)
	assert.Equal(t, 0, first.Products[0].Stock)
	require.Len(t, first.Orders, 1)
	assert.Equal(t, 1, first.Orders[0].Quantity)
	assert.Equal(t, "Guest Customer", first.Orders[0].CustomerName)
	assert.Equal(t, model.OrderPending, first.Orders[0].Status)
	assert.Equal(t, "ORD-001", first.Orders[0].ID)
	assert.Equal(t, "2026-10-18", first.Orders[0].Date)

	// the caller still holds the stale product with stock 1
	second := AddToCart(&product, first.Products, first.Orders, fixedPolicy())
	assert.Equal(t, 0, second.Products[0].Stock)
	require.Len(t, second.Orders, 1)
	assert.Equal(t, 2, second.Orders[0].Quantity)
	assert.True(t, second.Orders[0].TotalPrice.Equal(dec("14.50")))
}

func TestAddToCart_NoOp(t *testing.T) {
	products := catalog()
	orders := []model.Order{{ID: "ORD-001", ProductID: "A", Quantity: 1}}

	res := AddToCart(nil, products, orders, fixedPolicy())
	assert.Nil(t, res.Order)
	assert.Equal(t, products, res.Products)
	assert.Equal(t, orders, res.Orders)

	empty := model.Product{ID: "A", Stock: 0}
	res = AddToCart(&empty, products, orders, fixedPolicy())
	assert.Nil(t, res.Order)
	assert.Equal(t, catalog(), res.Products)
}

func TestAddToCart_MergesIntoFirstMatchingOrderOnly(t *testing.T) {
	products := catalog()
	orders := []model.Order{
		{ID: "ORD-001", ProductID: "A", Quantity: 1, UnitPrice: dec("12.50"), TotalPrice: dec("12.50"), Status: model.OrderCompleted},
		{ID: "ORD-002", ProductID: "A", Quantity: 4, UnitPrice: dec("12.50"), TotalPrice: dec("50"), Status: model.OrderPending},
	}

	res := AddToCart(&products[0], products, orders, fixedPolicy())
	require.NotNil(t, res.Order)
	require.Len(t, res.Orders, 2)
	assert.Equal(t, "ORD-001", res.Order.ID)
	assert.Equal(t, 2, res.Orders[0].Quantity)
	assert.Equal(t, model.OrderCompleted, res.Orders[0].Status)
	assert.Equal(t, 4, res.Orders[1].Quantity)
	assert.True(t, res.Orders[1].TotalPrice.Equal(dec("50")))
}

func TestAddToCart_MergeResnapshotsPrice(t *testing.T) {
	products := catalog()
	orders := []model.Order{{ID: "ORD-001", ProductID: "A", Quantity: 2, UnitPrice: dec("10"), TotalPrice: dec("20")}}

	res := AddToCart(&products[0], products, orders, fixedPolicy())
	require.NotNil(t, res.Order)
	assert.Equal(t, 3, res.Order.Quantity)
	assert.True(t, res.Order.UnitPrice.Equal(dec("12.50")))
	assert.True(t, res.Order.TotalPrice.Equal(dec("37.50")))
	assert.Equal(t, 9, stockOf(t, res.Products, "A"))
	assert.Equal(t, 2, orders[0].Quantity)
}
