package alert

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/alert/dto"
	"github.com/fekuna/omnipos-console/internal/model"
)

type UseCase interface {
	ListAlerts(ctx context.Context, filters *dto.AlertFilters) ([]model.Alert, error)
	GetStats(ctx context.Context) (*dto.AlertStats, error)
	Acknowledge(ctx context.Context, id string) error
	AcknowledgeAll(ctx context.Context, filters *dto.AlertFilters) (int, error)
	ToggleSnooze(ctx context.Context, id string) (bool, error)
}
