package in

import (
	"context"

	"partshub/internal/modules/diagplugin/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PluginInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	Decode(ctx context.Context, code, vehicle string) (dto.DecodeOutput, error)
}
