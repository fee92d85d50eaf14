package settings

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/settings/dto"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	GetSettings(ctx context.Context) (*model.Settings, error)
	SetCurrency(ctx context.Context, code string) (*model.Settings, error)
	ToggleTheme(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, input *dto.UpdateSettingsInput) (*model.Settings, error)
	FormatCurrency(ctx context.Context, amount decimal.Decimal) (string, error)
}
