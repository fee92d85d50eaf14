package handler

import (
	"context"
	"os"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/console"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/report"
	"github.com/fekuna/omnipos-console/internal/settings"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ console.Registrar = (*ReportHandler)(nil)

type ReportHandler struct {
	uc       report.UseCase
	settings settings.UseCase
	logger   logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, settings settings.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:       uc,
		settings: settings,
		logger:   log,
	}
}

type ExportResponse struct {
	File  string `json:"file"`
	Bytes int    `json:"bytes"`
}

func (h *ReportHandler) Register(r *console.Router) {
	r.Handle("report", "dashboard", "report dashboard", h.GetDashboard)
	r.Handle("report", "summary", "report summary", h.GetSummary)
	r.Handle("report", "export", "report export file= [title=]", h.ExportSummary)
}

func (h *ReportHandler) GetDashboard(ctx context.Context, req *console.Request) (interface{}, error) {
	return h.uc.GetDashboard(ctx)
}

func (h *ReportHandler) GetSummary(ctx context.Context, req *console.Request) (interface{}, error) {
	return h.uc.GetSummary(ctx)
}

func (h *ReportHandler) ExportSummary(ctx context.Context, req *console.Request) (interface{}, error) {
	file := req.String("file")
	if file == "" {
		return nil, apperr.Validation("file required")
	}
	title := req.String("title")
	if title == "" {
		title = "OmniPOS Report"
	}

	summary, err := h.uc.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	money := func(d decimal.Decimal) string {
		s, err := h.settings.FormatCurrency(ctx, d)
		if err != nil {
			return d.StringFixed(2)
		}
		return s
	}
	data, err := report.SummaryPDF(summary, title, money)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		h.logger.Error("failed to write report", zap.String("file", file), zap.Error(err))
		return nil, err
	}

	h.logger.Info("report exported", zap.String("file", file), zap.Int("bytes", len(data)))
	return &ExportResponse{File: file, Bytes: len(data)}, nil
}
