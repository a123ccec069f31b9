package in

import (
	"context"

	"partshub/internal/modules/admin/dto"
	adminin "partshub/internal/modules/admin/port/in"
)

type CLIHandler struct {
	usecase adminin.Usecase
}

func NewCLIHandler(usecase adminin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) Activity(ctx context.Context, limit, skip int) ([]dto.ActivityOutput, error) {
	return h.usecase.Activity(ctx, limit, skip)
}

func (h CLIHandler) Users(ctx context.Context) ([]dto.UserOutput, error) {
	return h.usecase.Users(ctx)
}

func (h CLIHandler) Settings(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.Settings(ctx)
}

func (h CLIHandler) SetMarkup(ctx context.Context, percent float64) error {
	return h.usecase.UpdateMarkup(ctx, percent)
}
