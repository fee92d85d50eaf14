package report

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/report/dto"
)

type UseCase interface {
	GetDashboard(ctx context.Context) (*dto.Dashboard, error)
	GetSummary(ctx context.Context) (*dto.Summary, error)
}
