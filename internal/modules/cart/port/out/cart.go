package out

import (
	"context"

	"partshub/internal/modules/cart/domain"
)

// API mirrors cart mutations to the backend.
type API interface {
	Fetch(ctx context.Context, telegramID int64) (domain.Cart, error)
	Add(ctx context.Context, telegramID int64, line domain.Line) error
	Update(ctx context.Context, telegramID int64, article string, quantity int) error
	Remove(ctx context.Context, telegramID int64, article string) error
}
