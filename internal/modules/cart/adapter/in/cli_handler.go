package in

import (
	"context"

	"partshub/internal/modules/cart/dto"
	cartin "partshub/internal/modules/cart/port/in"
)

type CLIHandler struct {
	usecase cartin.Usecase
}

func NewCLIHandler(usecase cartin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.CartOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) Add(ctx context.Context, article, brand, supplier string, price float64, deliveryDays, quantity int) (dto.CartOutput, error) {
	return h.usecase.Add(ctx, dto.LineInput{
		Article:      article,
		Brand:        brand,
		Supplier:     supplier,
		Price:        price,
		DeliveryDays: deliveryDays,
		Quantity:     quantity,
	})
}

func (h CLIHandler) Update(ctx context.Context, article string, quantity int) (dto.CartOutput, error) {
	return h.usecase.UpdateQuantity(ctx, article, quantity)
}

func (h CLIHandler) Remove(ctx context.Context, article string, confirmed bool) (dto.CartOutput, error) {
	return h.usecase.Remove(ctx, article, confirmed)
}
