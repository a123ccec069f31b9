package usecase

import (
	"context"

	"partshub/internal/modules/diagplugin/dto"
	"partshub/internal/modules/diagplugin/service"
)

type Interactor struct {
	decoders *service.DecoderService
}

func New(decoders *service.DecoderService) *Interactor {
	return &Interactor{decoders: decoders}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.decoders.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.decoders.Doctor(ctx)
}

func (i *Interactor) Decode(ctx context.Context, code, vehicle string) (dto.DecodeOutput, error) {
	return i.decoders.Decode(ctx, code, vehicle)
}
