package handler

import (
	"context"
	"strconv"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/console"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/order"
	"github.com/fekuna/omnipos-console/internal/order/dto"
)

var _ console.Registrar = (*OrderHandler)(nil)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

type ListOrdersResponse struct {
	Orders   []model.Order `json:"orders"`
	Total    int           `json:"total"`
	Page     int           `json:"page,omitempty"`
	PageSize int           `json:"pageSize,omitempty"`
}

func (h *OrderHandler) Register(r *console.Router) {
	r.Handle("order", "list", "order list [status=] [product=] [customer=] [sort=date|total] [order=asc|desc] [page=] [size=]", h.ListOrders)
	r.Handle("order", "get", "order get <id>", h.GetOrder)
	r.Handle("order", "create", "order create product= quantity= [customer=] [status=] [date=YYYY-MM-DD]", h.CreateOrder)
	r.Handle("order", "update", "order update <id> [product=] [quantity=] [price=] [customer=] [status=] [date=YYYY-MM-DD]", h.UpdateOrder)
	r.Handle("order", "delete", "order delete <id> confirm=yes", h.DeleteOrder)
}

// parseInput reads the order form. Fields missing from req are taken from
// base when it is given.
func parseInput(req *console.Request, base *model.Order) (*dto.OrderInput, error) {
	input := &dto.OrderInput{
		CustomerName: req.String("customer"),
		ProductID:    req.String("product"),
	}
	rawQty := req.String("quantity")

	if base != nil {
		if !req.Has("product") {
			input.ProductID = base.ProductID
		}
		if !req.Has("quantity") {
			rawQty = strconv.Itoa(base.Quantity)
		}
	}

	qty, err := dto.ParseQuantity(rawQty)
	if err != nil {
		return nil, err
	}
	input.Quantity = qty

	if input.UnitPrice, err = dto.ParseUnitPrice(req.String("price")); err != nil {
		return nil, err
	}
	if input.Status, err = dto.ParseStatus(req.String("status")); err != nil {
		return nil, err
	}
	if input.Date, err = dto.ParseDate(req.String("date")); err != nil {
		return nil, err
	}
	return input, nil
}

func (h *OrderHandler) CreateOrder(ctx context.Context, req *console.Request) (interface{}, error) {
	if req.Has("price") {
		return nil, apperr.Validation("price is taken from the product on create")
	}
	input, err := parseInput(req, nil)
	if err != nil {
		return nil, err
	}
	return h.uc.CreateOrder(ctx, input)
}

func (h *OrderHandler) GetOrder(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	return h.uc.GetOrder(ctx, id)
}

func (h *OrderHandler) ListOrders(ctx context.Context, req *console.Request) (interface{}, error) {
	page, err := req.Int("page", 0)
	if err != nil {
		return nil, err
	}
	size, err := req.Int("size", 0)
	if err != nil {
		return nil, err
	}

	filters := &dto.OrderFilters{
		Status:        req.String("status"),
		ProductID:     req.String("product"),
		CustomerQuery: req.String("customer"),
		SortBy:        req.String("sort"),
		SortOrder:     req.String("order"),
		Page:          page,
		PageSize:      size,
	}

	orders, count, err := h.uc.ListOrders(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &ListOrdersResponse{Orders: orders, Total: count, Page: page, PageSize: size}, nil
}

func (h *OrderHandler) UpdateOrder(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	existing, err := h.uc.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	input, err := parseInput(req, existing)
	if err != nil {
		return nil, err
	}
	return h.uc.UpdateOrder(ctx, id, input)
}

func (h *OrderHandler) DeleteOrder(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	if err := req.Confirmed(); err != nil {
		return nil, err
	}
	if err := h.uc.DeleteOrder(ctx, id); err != nil {
		return nil, err
	}
	return console.Message{Message: "order " + id + " deleted"}, nil
}
