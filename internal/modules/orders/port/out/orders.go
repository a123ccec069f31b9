package out

import (
	"context"

	"partshub/internal/modules/orders/domain"
)

type API interface {
	Create(ctx context.Context, telegramID int64, customer domain.CustomerInfo) (orderID string, total float64, err error)
	List(ctx context.Context, telegramID int64) ([]domain.Order, error)
	Get(ctx context.Context, orderID string) (domain.Order, error)
}

// CartGateway is the slice of the cart module checkout needs: the
// backend builds the order from the server cart, so the client only
// checks emptiness up front and clears its copy afterwards.
type CartGateway interface {
	Empty() bool
	Clear()
}
