package out

import (
	"context"

	"partshub/internal/modules/admin/domain"
)

type API interface {
	Activity(ctx context.Context, limit, skip int) ([]domain.ActivityEntry, error)
	Users(ctx context.Context) ([]domain.UserSummary, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Settings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, telegramID int64, markupPercent float64) error
}
