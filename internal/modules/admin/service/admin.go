package service

import (
	"context"

	"partshub/internal/modules/admin/domain"
	adminout "partshub/internal/modules/admin/port/out"
	apperrors "partshub/internal/platform/errors"
)

// Admin wraps the backend admin endpoints. The IsAdmin check only
// decides what the UI shows; every write carries the caller's id and
// the backend makes the real access decision.
type Admin struct {
	api        adminout.API
	adminID    int64
	telegramID int64
}

func New(api adminout.API, adminID, telegramID int64) *Admin {
	return &Admin{api: api, adminID: adminID, telegramID: telegramID}
}

func (a *Admin) IsAdmin() bool {
	return a.adminID != 0 && a.telegramID == a.adminID
}

func (a *Admin) Activity(ctx context.Context, limit, skip int) ([]domain.ActivityEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	return a.api.Activity(ctx, limit, skip)
}

func (a *Admin) Users(ctx context.Context) ([]domain.UserSummary, error) {
	return a.api.Users(ctx)
}

func (a *Admin) Stats(ctx context.Context) (domain.Stats, error) {
	return a.api.Stats(ctx)
}

func (a *Admin) Settings(ctx context.Context) (domain.Settings, error) {
	return a.api.Settings(ctx)
}

func (a *Admin) UpdateMarkup(ctx context.Context, percent float64) error {
	if percent < 0 || percent > 100 {
		return apperrors.ErrInvalidInput
	}
	return a.api.UpdateSettings(ctx, a.telegramID, percent)
}
