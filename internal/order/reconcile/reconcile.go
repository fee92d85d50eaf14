// Package reconcile keeps orders and product stock consistent. Every function
// takes the current collections and returns new ones; inputs are never
// modified, and on error the caller keeps what it had.
package reconcile

import (
	"strings"
	"time"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/shopspring/decimal"
)

// Draft is the caller's order form. Zero values mean "not given".
type Draft struct {
	CustomerName string
	ProductID    string
	Quantity     int
	UnitPrice    *decimal.Decimal // Update only; nil keeps the order's price unless the product changes
	Status       model.OrderStatus
	Date         string
}

type Policy struct {
	IDs IDGenerator
	// RestoreStockOnDelete returns a deleted order's quantity to its product.
	RestoreStockOnDelete bool
	GuestCustomerName    string
	Today                func() string
}

func DefaultPolicy() Policy {
	return Policy{
		IDs:               &MonotonicIDs{},
		GuestCustomerName: "Guest Customer",
		Today:             Today,
	}
}

// Today is the current UTC date as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (p Policy) today() string {
	if p.Today == nil {
		return Today()
	}
	return p.Today()
}

func (p Policy) ids() IDGenerator {
	if p.IDs == nil {
		return LengthIDs{}
	}
	return p.IDs
}

type Result struct {
	Products []model.Product
	Orders   []model.Order
	// Order is the order created, updated, deleted or merged. Nil when nothing
	// changed.
	Order *model.Order
}

func resolveProduct(products []model.Product, productID string) (int, error) {
	id := strings.TrimSpace(productID)
	if id == "" {
		return -1, apperr.Validation(apperr.ReasonProductRequired)
	}
	i := model.FindProduct(products, id)
	if i < 0 {
		return -1, apperr.Validation(apperr.ReasonProductNotFound)
	}
	return i, nil
}

func checkDraft(d Draft) error {
	if d.Quantity < 1 {
		return apperr.Validation("invalid quantity")
	}
	if d.Status != "" && !d.Status.IsValid() {
		return apperr.Validationf("invalid status %q", d.Status)
	}
	if d.UnitPrice != nil && d.UnitPrice.IsNegative() {
		return apperr.Validation("invalid price")
	}
	return nil
}

func cloneProducts(products []model.Product) []model.Product {
	return append([]model.Product(nil), products...)
}

func cloneOrders(orders []model.Order) []model.Order {
	return append([]model.Order(nil), orders...)
}

// Create places a new order and takes its quantity out of the product's stock.
func Create(d Draft, products []model.Product, orders []model.Order, p Policy) (Result, error) {
	pi, err := resolveProduct(products, d.ProductID)
	if err != nil {
		return Result{}, err
	}
	if err := checkDraft(d); err != nil {
		return Result{}, err
	}

	product := products[pi]
	if d.Quantity > product.Stock {
		return Result{}, apperr.Validation(apperr.ReasonInsufficientStock)
	}

	status := d.Status
	if status == "" {
		status = model.OrderPending
	}
	date := d.Date
	if date == "" {
		date = p.today()
	}

	order := model.Order{
		ID:           p.ids().NextOrderID(orders),
		CustomerName: d.CustomerName,
		ProductID:    product.ID,
		ProductName:  product.Name,
		Quantity:     d.Quantity,
		UnitPrice:    product.Price,
		TotalPrice:   model.LineTotal(d.Quantity, product.Price),
		Status:       status,
		Date:         date,
	}

	nextProducts := cloneProducts(products)
	nextProducts[pi].Stock -= d.Quantity

	nextOrders := append(cloneOrders(orders), order)
	return Result{Products: nextProducts, Orders: nextOrders, Order: &order}, nil
}

// Update rewrites an order in place. The prior quantity goes back to the prior
// product and the new quantity comes out of the selected product. When the
// product is unchanged the prior quantity counts toward what is available.
func Update(id string, d Draft, products []model.Product, orders []model.Order, p Policy) (Result, error) {
	oi := model.FindOrder(orders, id)
	if oi < 0 {
		return Result{}, apperr.NotFound("order", id)
	}
	prior := orders[oi]

	ni, err := resolveProduct(products, d.ProductID)
	if err != nil {
		return Result{}, err
	}
	if err := checkDraft(d); err != nil {
		return Result{}, err
	}

	product := products[ni]
	sameProduct := product.ID == prior.ProductID

	available := product.Stock
	if sameProduct {
		available += prior.Quantity
	}
	if d.Quantity > available {
		return Result{}, apperr.Validation(apperr.ReasonInsufficientStock)
	}

	nextProducts := cloneProducts(products)
	if sameProduct {
		nextProducts[ni].Stock = product.Stock + prior.Quantity - d.Quantity
	} else {
		if pi := model.FindProduct(nextProducts, prior.ProductID); pi >= 0 {
			nextProducts[pi].Stock += prior.Quantity
		}
		nextProducts[ni].Stock -= d.Quantity
	}

	unitPrice := product.Price
	switch {
	case d.UnitPrice != nil:
		unitPrice = *d.UnitPrice
	case sameProduct:
		unitPrice = prior.UnitPrice
	}

	updated := prior
	updated.ProductID = product.ID
	updated.ProductName = product.Name
	updated.Quantity = d.Quantity
	updated.UnitPrice = unitPrice
	updated.TotalPrice = model.LineTotal(d.Quantity, unitPrice)
	if d.CustomerName != "" {
		updated.CustomerName = d.CustomerName
	}
	if d.Status != "" {
		updated.Status = d.Status
	}
	if d.Date != "" {
		updated.Date = d.Date
	}

	nextOrders := cloneOrders(orders)
	nextOrders[oi] = updated
	return Result{Products: nextProducts, Orders: nextOrders, Order: &updated}, nil
}

// Delete removes an order. Stock is returned only under RestoreStockOnDelete,
// and only if the product still exists.
func Delete(id string, products []model.Product, orders []model.Order, p Policy) (Result, error) {
	oi := model.FindOrder(orders, id)
	if oi < 0 {
		return Result{}, apperr.NotFound("order", id)
	}
	removed := orders[oi]

	nextOrders := make([]model.Order, 0, len(orders)-1)
	nextOrders = append(nextOrders, orders[:oi]...)
	nextOrders = append(nextOrders, orders[oi+1:]...)

	nextProducts := products
	if p.RestoreStockOnDelete {
		if pi := model.FindProduct(products, removed.ProductID); pi >= 0 {
			nextProducts = cloneProducts(products)
			nextProducts[pi].Stock += removed.Quantity
		}
	}

	return Result{Products: nextProducts, Orders: nextOrders, Order: &removed}, nil
}

// AddToCart takes one unit of product. It merges into the first order already
// referencing the product, or opens a guest order. Stock never goes below
// zero here; a nil or empty product changes nothing.
func AddToCart(product *model.Product, products []model.Product, orders []model.Order, p Policy) Result {
	if product == nil || product.Stock <= 0 {
		return Result{Products: products, Orders: orders}
	}

	nextProducts := cloneProducts(products)
	if pi := model.FindProduct(nextProducts, product.ID); pi >= 0 {
		stock := nextProducts[pi].Stock - 1
		if stock < 0 {
			stock = 0
		}
		nextProducts[pi].Stock = stock
	}

	nextOrders := cloneOrders(orders)
	for i := range nextOrders {
		if nextOrders[i].ProductID != product.ID {
			continue
		}
		o := &nextOrders[i]
		o.Quantity++
		o.UnitPrice = product.Price
		o.TotalPrice = model.LineTotal(o.Quantity, o.UnitPrice)
		merged := *o
		return Result{Products: nextProducts, Orders: nextOrders, Order: &merged}
	}

	guest := p.GuestCustomerName
	if guest == "" {
		guest = "Guest Customer"
	}
	order := model.Order{
		ID:           p.ids().NextOrderID(orders),
		CustomerName: guest,
		ProductID:    product.ID,
		ProductName:  product.Name,
		Quantity:     1,
		UnitPrice:    product.Price,
		TotalPrice:   model.LineTotal(1, product.Price),
		Status:       model.OrderPending,
		Date:         p.today(),
	}
	nextOrders = append(nextOrders, order)
	return Result{Products: nextProducts, Orders: nextOrders, Order: &order}
}
