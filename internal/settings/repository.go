package settings

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/model"
)

type Repository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, s *model.Settings) error
}
