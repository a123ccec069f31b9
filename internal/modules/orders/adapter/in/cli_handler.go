package in

import (
	"context"

	"partshub/internal/modules/orders/dto"
	ordersin "partshub/internal/modules/orders/port/in"
)

type CLIHandler struct {
	usecase ordersin.Usecase
}

func NewCLIHandler(usecase ordersin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Checkout(ctx context.Context, name, phone, address string) (dto.ConfirmationOutput, error) {
	return h.usecase.Checkout(ctx, dto.CheckoutInput{Name: name, Phone: phone, Address: address})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.OrderOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, orderID string) (dto.OrderOutput, error) {
	return h.usecase.Get(ctx, orderID)
}
