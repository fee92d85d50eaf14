package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-console/internal/alert"
	"github.com/fekuna/omnipos-console/internal/alert/deriver"
	"github.com/fekuna/omnipos-console/internal/alert/dto"
	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/product"
	prodDto "github.com/fekuna/omnipos-console/internal/product/dto"
	"go.uber.org/zap"
)

type alertUseCase struct {
	repo       alert.Repository
	products   product.Repository
	thresholds deriver.Thresholds
	logger     logger.ZapLogger
}

func NewAlertUseCase(repo alert.Repository, products product.Repository, th deriver.Thresholds, log logger.ZapLogger) alert.UseCase {
	return &alertUseCase{
		repo:       repo,
		products:   products,
		thresholds: th,
		logger:     log,
	}
}

func (uc *alertUseCase) derive(ctx context.Context) ([]model.Alert, error) {
	products, _, err := uc.products.FindAll(ctx, &prodDto.ProductFilters{})
	if err != nil {
		return nil, err
	}
	return deriver.Derive(products, uc.thresholds), nil
}

func (uc *alertUseCase) ListAlerts(ctx context.Context, filters *dto.AlertFilters) ([]model.Alert, error) {
	alerts, err := uc.derive(ctx)
	if err != nil {
		return nil, err
	}
	resolved, err := uc.repo.ResolvedIDs(ctx)
	if err != nil {
		return nil, err
	}
	snoozed, err := uc.repo.SnoozedIDs(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filters.SearchQuery))
	visible := make([]model.Alert, 0, len(alerts))
	for _, a := range alerts {
		if resolved[a.ID] {
			continue
		}
		a.Snoozed = snoozed[a.ID]
		if a.Snoozed && !filters.ShowSnoozed {
			continue
		}
		if filters.Type != "" && !strings.EqualFold(string(a.Type), filters.Type) {
			continue
		}
		if filters.Severity != "" && !strings.EqualFold(string(a.Severity), filters.Severity) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(a.ProductName), term) &&
			!strings.Contains(strings.ToLower(string(a.Type)), term) &&
			!strings.Contains(strings.ToLower(a.Detail), term) {
			continue
		}
		visible = append(visible, a)
	}
	return visible, nil
}

func (uc *alertUseCase) GetStats(ctx context.Context) (*dto.AlertStats, error) {
	alerts, err := uc.derive(ctx)
	if err != nil {
		return nil, err
	}
	resolved, err := uc.repo.ResolvedIDs(ctx)
	if err != nil {
		return nil, err
	}
	snoozed, err := uc.repo.SnoozedIDs(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.AlertStats{}
	for _, a := range alerts {
		if resolved[a.ID] {
			continue
		}
		stats.Total++
		switch a.Severity {
		case model.SeverityCritical:
			stats.Critical++
		case model.SeverityWarning:
			stats.Warning++
		}
		if snoozed[a.ID] {
			stats.Snoozed++
		}
	}
	return stats, nil
}

func (uc *alertUseCase) find(ctx context.Context, id string) error {
	alerts, err := uc.derive(ctx)
	if err != nil {
		return err
	}
	for _, a := range alerts {
		if a.ID == id {
			return nil
		}
	}
	return apperr.NotFound("alert", id)
}

func (uc *alertUseCase) Acknowledge(ctx context.Context, id string) error {
	if err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Resolve(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("alert acknowledged", zap.String("alert_id", id))
	return nil
}

// AcknowledgeAll resolves every alert the filters currently show.
func (uc *alertUseCase) AcknowledgeAll(ctx context.Context, filters *dto.AlertFilters) (int, error) {
	alerts, err := uc.ListAlerts(ctx, filters)
	if err != nil {
		return 0, err
	}
	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}
	if err := uc.repo.Resolve(ctx, ids...); err != nil {
		return 0, err
	}
	uc.logger.Info("alerts acknowledged", zap.Int("count", len(ids)))
	return len(ids), nil
}

func (uc *alertUseCase) ToggleSnooze(ctx context.Context, id string) (bool, error) {
	if err := uc.find(ctx, id); err != nil {
		return false, err
	}
	snoozed, err := uc.repo.ToggleSnooze(ctx, id)
	if err != nil {
		return false, err
	}
	uc.logger.Info("alert snooze toggled", zap.String("alert_id", id), zap.Bool("snoozed", snoozed))
	return snoozed, nil
}
