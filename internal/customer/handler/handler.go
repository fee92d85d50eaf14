package handler

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-console/internal/console"
	"github.com/fekuna/omnipos-console/internal/customer"
	"github.com/fekuna/omnipos-console/internal/customer/dto"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/shopspring/decimal"
)

var _ console.Registrar = (*CustomerHandler)(nil)

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

type ListCustomersResponse struct {
	Customers []model.Customer `json:"customers"`
	Total     int              `json:"total"`
	Page      int              `json:"page,omitempty"`
	PageSize  int              `json:"pageSize,omitempty"`
}

func (h *CustomerHandler) Register(r *console.Router) {
	r.Handle("customer", "list", "customer list [search=] [status=] [page=] [size=]", h.ListCustomers)
	r.Handle("customer", "get", "customer get <id>", h.GetCustomer)
	r.Handle("customer", "create", "customer create name= [email=] [phone=] [status=] [joined=] [orders=] [spend=] [lastorder=] [notes=]", h.CreateCustomer)
	r.Handle("customer", "update", "customer update <id> [name=] [email=] [phone=] [status=] [joined=] [orders=] [spend=] [lastorder=] [notes=]", h.UpdateCustomer)
	r.Handle("customer", "delete", "customer delete <id> confirm=yes", h.DeleteCustomer)
	r.Handle("customer", "toggle", "customer toggle <id>", h.ToggleStatus)
	r.Handle("customer", "stats", "customer stats", h.Stats)
}

// parseStatus matches a known status case-insensitively and passes anything
// else through for the use case to reject.
func parseStatus(raw string) model.CustomerStatus {
	for _, s := range model.CustomerStatuses {
		if strings.EqualFold(string(s), strings.TrimSpace(raw)) {
			return s
		}
	}
	return model.CustomerStatus(raw)
}

func (h *CustomerHandler) CreateCustomer(ctx context.Context, req *console.Request) (interface{}, error) {
	orders, err := req.Int("orders", 0)
	if err != nil {
		return nil, err
	}
	spend, err := req.DecimalPtr("spend")
	if err != nil {
		return nil, err
	}
	totalSpend := decimal.Zero
	if spend != nil {
		totalSpend = *spend
	}

	input := &dto.CreateCustomerInput{
		Name:          req.String("name"),
		Email:         req.String("email"),
		Phone:         req.String("phone"),
		Joined:        req.String("joined"),
		TotalOrders:   orders,
		TotalSpend:    totalSpend,
		LastOrderDate: req.String("lastorder"),
		Notes:         req.String("notes"),
	}
	if req.Has("status") {
		input.Status = parseStatus(req.String("status"))
	}
	return h.uc.CreateCustomer(ctx, input)
}

func (h *CustomerHandler) GetCustomer(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	return h.uc.GetCustomer(ctx, id)
}

func (h *CustomerHandler) ListCustomers(ctx context.Context, req *console.Request) (interface{}, error) {
	page, err := req.Int("page", 0)
	if err != nil {
		return nil, err
	}
	size, err := req.Int("size", 0)
	if err != nil {
		return nil, err
	}

	filters := &dto.CustomerFilters{
		SearchQuery: req.String("search"),
		Status:      req.String("status"),
		Page:        page,
		PageSize:    size,
	}

	customers, count, err := h.uc.ListCustomers(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &ListCustomersResponse{Customers: customers, Total: count, Page: page, PageSize: size}, nil
}

func (h *CustomerHandler) UpdateCustomer(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	orders, err := req.IntPtr("orders")
	if err != nil {
		return nil, err
	}
	spend, err := req.DecimalPtr("spend")
	if err != nil {
		return nil, err
	}

	input := &dto.UpdateCustomerInput{
		ID:            id,
		Name:          req.StringPtr("name"),
		Email:         req.StringPtr("email"),
		Phone:         req.StringPtr("phone"),
		Joined:        req.StringPtr("joined"),
		TotalOrders:   orders,
		TotalSpend:    spend,
		LastOrderDate: req.StringPtr("lastorder"),
		Notes:         req.StringPtr("notes"),
	}
	if req.Has("status") {
		s := parseStatus(req.String("status"))
		input.Status = &s
	}
	return h.uc.UpdateCustomer(ctx, input)
}

func (h *CustomerHandler) DeleteCustomer(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	if err := req.Confirmed(); err != nil {
		return nil, err
	}
	if err := h.uc.DeleteCustomer(ctx, id); err != nil {
		return nil, err
	}
	return console.Message{Message: "customer " + id + " deleted"}, nil
}

func (h *CustomerHandler) ToggleStatus(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	return h.uc.ToggleStatus(ctx, id)
}

func (h *CustomerHandler) Stats(ctx context.Context, req *console.Request) (interface{}, error) {
	return h.uc.Stats(ctx)
}
