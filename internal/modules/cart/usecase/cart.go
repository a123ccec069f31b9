package usecase

import (
	"context"

	"partshub/internal/modules/cart/dto"
	"partshub/internal/modules/cart/service"
)

type Interactor struct {
	manager *service.Manager
}

func New(manager *service.Manager) *Interactor {
	return &Interactor{manager: manager}
}

func (i *Interactor) Load(ctx context.Context) (dto.CartOutput, error) {
	return i.manager.Load(ctx)
}

func (i *Interactor) Add(ctx context.Context, line dto.LineInput) (dto.CartOutput, error) {
	return i.manager.Add(ctx, line)
}

func (i *Interactor) UpdateQuantity(ctx context.Context, article string, quantity int) (dto.CartOutput, error) {
	return i.manager.UpdateQuantity(ctx, article, quantity)
}

func (i *Interactor) Remove(ctx context.Context, article string, confirmed bool) (dto.CartOutput, error) {
	return i.manager.Remove(ctx, article, confirmed)
}

func (i *Interactor) Snapshot() dto.CartOutput {
	return i.manager.Snapshot()
}
