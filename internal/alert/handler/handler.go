package handler

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/alert"
	"github.com/fekuna/omnipos-console/internal/alert/dto"
	"github.com/fekuna/omnipos-console/internal/console"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
)

var _ console.Registrar = (*AlertHandler)(nil)

type AlertHandler struct {
	uc     alert.UseCase
	logger logger.ZapLogger
}

func NewAlertHandler(uc alert.UseCase, log logger.ZapLogger) *AlertHandler {
	return &AlertHandler{
		uc:     uc,
		logger: log,
	}
}

type ListAlertsResponse struct {
	Alerts []model.Alert `json:"alerts"`
	Total  int           `json:"total"`
}

type AcknowledgeAllResponse struct {
	Acknowledged int `json:"acknowledged"`
}

type SnoozeResponse struct {
	ID      string `json:"id"`
	Snoozed bool   `json:"snoozed"`
}

func (h *AlertHandler) Register(r *console.Router) {
	r.Handle("alert", "list", "alert list [search=] [type=] [severity=critical|warning] [snoozed=true]", h.ListAlerts)
	r.Handle("alert", "stats", "alert stats", h.GetStats)
	r.Handle("alert", "ack", "alert ack <id>", h.Acknowledge)
	r.Handle("alert", "ack-all", "alert ack-all [search=] [type=] [severity=] [snoozed=true] confirm=yes", h.AcknowledgeAll)
	r.Handle("alert", "snooze", "alert snooze <id>", h.ToggleSnooze)
}

func parseFilters(req *console.Request) (*dto.AlertFilters, error) {
	showSnoozed, err := req.Bool("snoozed")
	if err != nil {
		return nil, err
	}
	return &dto.AlertFilters{
		SearchQuery: req.String("search"),
		Type:        req.String("type"),
		Severity:    req.String("severity"),
		ShowSnoozed: showSnoozed,
	}, nil
}

func (h *AlertHandler) ListAlerts(ctx context.Context, req *console.Request) (interface{}, error) {
	filters, err := parseFilters(req)
	if err != nil {
		return nil, err
	}
	alerts, err := h.uc.ListAlerts(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &ListAlertsResponse{Alerts: alerts, Total: len(alerts)}, nil
}

func (h *AlertHandler) GetStats(ctx context.Context, req *console.Request) (interface{}, error) {
	return h.uc.GetStats(ctx)
}

func (h *AlertHandler) Acknowledge(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	if err := h.uc.Acknowledge(ctx, id); err != nil {
		return nil, err
	}
	return console.Message{Message: "alert " + id + " acknowledged"}, nil
}

func (h *AlertHandler) AcknowledgeAll(ctx context.Context, req *console.Request) (interface{}, error) {
	if err := req.Confirmed(); err != nil {
		return nil, err
	}
	filters, err := parseFilters(req)
	if err != nil {
		return nil, err
	}
	n, err := h.uc.AcknowledgeAll(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &AcknowledgeAllResponse{Acknowledged: n}, nil
}

func (h *AlertHandler) ToggleSnooze(ctx context.Context, req *console.Request) (interface{}, error) {
	id, err := req.ID()
	if err != nil {
		return nil, err
	}
	snoozed, err := h.uc.ToggleSnooze(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SnoozeResponse{ID: id, Snoozed: snoozed}, nil
}
