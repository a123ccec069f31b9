package in

import (
	"context"

	"partshub/internal/modules/orders/dto"
)

type Usecase interface {
	// Checkout turns the current cart into an order on the backend.
	Checkout(ctx context.Context, in dto.CheckoutInput) (dto.ConfirmationOutput, error)
	List(ctx context.Context) ([]dto.OrderOutput, error)
	Get(ctx context.Context, orderID string) (dto.OrderOutput, error)
}
