package in

import (
	"context"

	"partshub/internal/modules/diagplugin/dto"
	pluginin "partshub/internal/modules/diagplugin/port/in"
)

type CLIHandler struct {
	usecase pluginin.Usecase
}

func NewCLIHandler(usecase pluginin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) Decode(ctx context.Context, code, vehicle string) (dto.DecodeOutput, error) {
	return h.usecase.Decode(ctx, code, vehicle)
}
