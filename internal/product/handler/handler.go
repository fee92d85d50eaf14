package handler

import (
	"context"
	"os"
	"strings"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/console"
	"github.com/fekuna/omnipos-console/internal/label"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/order"
	"github.com/fekuna/omnipos-console/internal/product"
	"github.com/fekuna/omnipos-console/internal/product/dto"
	"github.com/fekuna/omnipos-console/internal/settings"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ console.Registrar = (*ProductHandler)(nil)

type ProductHandler struct {
	uc       product.UseCase
	orders   order.UseCase
	settings settings.UseCase
	logger   logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, orders order.UseCase, settings settings.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:       uc,
		orders:   orders,
		settings: settings,
		logger:   log,
	}
}

type ListProductsResponse struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
	Page     int             `json:"page,omitempty"`
	PageSize int             `json:"pageSize,omitempty"`
}

type LabelsResponse struct {
	File   string `json:"file"`
	Labels int    `json:"labels"`
	Bytes  int    `json:"bytes"`
}

type CartResponse struct {
	Added bool         `json:"added"`
	Order *model.Order `json:"order,omitempty"`
}

func (h *ProductHandler) Register(r *console.Router) {
	r.Handle("product", "list", "product list [search=] [category=] [active=] [instock=] [sort=name|price|stock] [order=asc|desc] [page=] [size=]", h.ListProducts)
	r.Handle("product", "get", "product get <id>", h.GetProduct)
	r.Handle("product", "create", "product create name= [id=] [category=] [price=] [stock=] [battery=] [status=] [alerts=] [lastsync=] [active=] [image=]", h.CreateProduct)
	r.Handle("product", "update", "product update <id> [name=] [category=] [price=] [stock=] [battery=] [status=] [alerts=] [lastsync=] [active=] [image=]", h.UpdateProduct)
	r.Handle("product", "delete", "product delete <id> confirm=yes", h.DeleteProduct)
	r.Handle("product", "cart", "product cart <id>", h.AddToCart)
	r.Handle("product", "labels", "product labels file= [ids=a,b] [category=] [cols=] [rows=]", h.PrintLabels)
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *console.Request) (interface{}, error) {
	stock, err := req.Int("stock", 0)
	if err != nil {
		return nil, err
	}
	alerts, err := req.Int("alerts", 0)
	if err != nil {
		return nil, err
	}
	price, err := req.DecimalPtr("price")
	if err != nil {
		return nil, err
	}
	if price == nil {
		zero := decimal.Zero
		price = &zero
	}
	active := true
	if b, err := req.BoolPtr("active"); err != nil {
		return nil, err
	} else if b != nil {
		active = *b
	}

	input := &dto.CreateProductInput{
		ID:       req.String("id"),
		Name:     req.String("name"),
		Category: req.String("category"),
		Battery:  req.String("battery"),
		Status:   req.String("status"),
		Alerts:   alerts,
		LastSync: req.String("lastsync"),
		Stock:    stock,
		Active:   active,
		Price:    *price,
		ImageURL: req.String("image"),
	}

	p, err := h.uc.CreateProduct(ctx, input)
	if err != nil {
		h.logger.Warn("failed to create product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	return h.uc.GetProduct(ctx, id)
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *console.Request) (interface{}, error) {
	isActive, err := req.BoolPtr("active")
	if err != nil {
		return nil, err
	}
	inStock, err := req.Bool("instock")
	if err != nil {
		return nil, err
	}
	page, err := req.Int("page", 0)
	if err != nil {
		return nil, err
	}
	size, err := req.Int("size", 0)
	if err != nil {
		return nil, err
	}

	filters := &dto.ProductFilters{
		Category:    req.String("category"),
		IsActive:    isActive,
		InStockOnly: inStock,
		SearchQuery: req.String("search"),
		SortBy:      req.String("sort"),
		SortOrder:   req.String("order"),
		Page:        page,
		PageSize:    size,
	}

	products, count, err := h.uc.ListProducts(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &ListProductsResponse{
		Products: products,
		Total:    count,
		Page:     page,
		PageSize: size,
	}, nil
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	stock, err := req.IntPtr("stock")
	if err != nil {
		return nil, err
	}
	alerts, err := req.IntPtr("alerts")
	if err != nil {
		return nil, err
	}
	price, err := req.DecimalPtr("price")
	if err != nil {
		return nil, err
	}
	active, err := req.BoolPtr("active")
	if err != nil {
		return nil, err
	}

	input := &dto.UpdateProductInput{
		ID:       id,
		Name:     req.StringPtr("name"),
		Category: req.StringPtr("category"),
		Battery:  req.StringPtr("battery"),
		Status:   req.StringPtr("status"),
		Alerts:   alerts,
		LastSync: req.StringPtr("lastsync"),
		Stock:    stock,
		Active:   active,
		Price:    price,
		ImageURL: req.StringPtr("image"),
	}

	p, err := h.uc.UpdateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	if err := req.Confirmed(); err != nil {
		return nil, err
	}
	if err := h.uc.DeleteProduct(ctx, id); err != nil {
		return nil, err
	}
	return console.Message{Message: "product " + id + " deleted"}, nil
}

func (h *ProductHandler) AddToCart(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	o, err := h.orders.AddToCart(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CartResponse{Added: o != nil, Order: o}, nil
}

func (h *ProductHandler) PrintLabels(ctx context.Context, req *console.Request) (interface{}, error) {
	file := req.String("file")
	if file == "" {
		return nil, apperr.Validation("file required")
	}
	cfg := label.DefaultConfig()
	cols, err := req.Int("cols", cfg.Cols)
	if err != nil {
		return nil, err
	}
	rows, err := req.Int("rows", cfg.Rows)
	if err != nil {
		return nil, err
	}
	cfg.Cols, cfg.Rows = cols, rows

	products, _, err := h.uc.ListProducts(ctx, &dto.ProductFilters{Category: req.String("category")})
	if err != nil {
		return nil, err
	}
	if raw := req.String("ids"); raw != "" {
		wanted := make(map[string]bool)
		for _, id := range strings.Split(raw, ",") {
			wanted[strings.TrimSpace(id)] = true
		}
		selected := products[:0:0]
		for _, p := range products {
			if wanted[p.ID] {
				selected = append(selected, p)
			}
		}
		products = selected
	}
	if len(products) == 0 {
		return nil, apperr.Validation("no products to print")
	}

	formatPrice := func(p model.Product) string {
		s, err := h.settings.FormatCurrency(ctx, p.Price)
		if err != nil {
			return p.Price.StringFixed(2)
		}
		return s
	}
	data, err := label.GeneratePDF(products, cfg, formatPrice)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		h.logger.Error("failed to write labels", zap.String("file", file), zap.Error(err))
		return nil, err
	}

	h.logger.Info("product labels written", zap.String("file", file), zap.Int("labels", len(products)))
	return &LabelsResponse{File: file, Labels: len(products), Bytes: len(data)}, nil
}
