package in

import (
	"context"

	"partshub/internal/modules/admin/dto"
)

type Usecase interface {
	// IsAdmin gates screen visibility only; the backend enforces writes.
	IsAdmin() bool
	Activity(ctx context.Context, limit, skip int) ([]dto.ActivityOutput, error)
	Users(ctx context.Context) ([]dto.UserOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
	Settings(ctx context.Context) (dto.SettingsOutput, error)
	UpdateMarkup(ctx context.Context, percent float64) error
}
