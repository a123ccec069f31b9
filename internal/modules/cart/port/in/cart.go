package in

import (
	"context"

	"partshub/internal/modules/cart/dto"
)

type Usecase interface {
	// Load replaces the local cart with the server copy.
	Load(ctx context.Context) (dto.CartOutput, error)
	Add(ctx context.Context, line dto.LineInput) (dto.CartOutput, error)
	UpdateQuantity(ctx context.Context, article string, quantity int) (dto.CartOutput, error)
	// Remove refuses to touch the cart unless the caller confirmed.
	Remove(ctx context.Context, article string, confirmed bool) (dto.CartOutput, error)
	Snapshot() dto.CartOutput
}
