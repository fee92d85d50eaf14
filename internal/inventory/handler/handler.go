package handler

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/console"
	"github.com/fekuna/omnipos-console/internal/inventory"
	"github.com/fekuna/omnipos-console/internal/inventory/dto"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
)

var _ console.Registrar = (*InventoryHandler)(nil)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

type ListMovementsResponse struct {
	Movements []model.StockMovement `json:"movements"`
	Total     int                   `json:"total"`
	Page      int                   `json:"page,omitempty"`
	PageSize  int                   `json:"pageSize,omitempty"`
}

func (h *InventoryHandler) Register(r *console.Router) {
	r.Handle("stock", "movements", "stock movements [product=] [type=] [ref=] [from=YYYY-MM-DD] [to=YYYY-MM-DD] [page=] [size=]", h.ListMovements)
	r.Handle("stock", "low", "stock low", h.ListLowStock)
}

func (h *InventoryHandler) ListMovements(ctx context.Context, req *console.Request) (interface{}, error) {
	page, err := req.Int("page", 0)
	if err != nil {
		return nil, err
	}
	size, err := req.Int("size", 0)
	if err != nil {
		return nil, err
	}
	start, err := parseDate(req.String("from"), false)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.String("to"), true)
	if err != nil {
		return nil, err
	}

	filters := &dto.MovementFilters{
		ProductID:    req.String("product"),
		MovementType: req.String("type"),
		ReferenceID:  req.String("ref"),
		StartDate:    start,
		EndDate:      end,
		Page:         page,
		PageSize:     size,
	}

	movements, count, err := h.uc.ListMovements(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &ListMovementsResponse{
		Movements: movements,
		Total:     count,
		Page:      page,
		PageSize:  size,
	}, nil
}

func (h *InventoryHandler) ListLowStock(ctx context.Context, req *console.Request) (interface{}, error) {
	return h.uc.ListLowStock(ctx)
}

// parseDate reads a YYYY-MM-DD bound; an end bound covers the whole day.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, apperr.Validationf("invalid date %q", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
