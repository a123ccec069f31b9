package usecase

import (
	"context"

	"partshub/internal/modules/orders/domain"
	"partshub/internal/modules/orders/dto"
	"partshub/internal/modules/orders/service"
)

type Interactor struct {
	placer *service.Placer
}

func New(placer *service.Placer) *Interactor {
	return &Interactor{placer: placer}
}

func (i *Interactor) Checkout(ctx context.Context, in dto.CheckoutInput) (dto.ConfirmationOutput, error) {
	orderID, total, err := i.placer.Place(ctx, domain.CustomerInfo{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		return dto.ConfirmationOutput{}, err
	}
	return dto.ConfirmationOutput{OrderID: orderID, Total: total}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.OrderOutput, error) {
	orders, err := i.placer.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderOutput, 0, len(orders))
	for _, order := range orders {
		out = append(out, orderOutput(order))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, orderID string) (dto.OrderOutput, error) {
	order, err := i.placer.Get(ctx, orderID)
	if err != nil {
		return dto.OrderOutput{}, err
	}
	return orderOutput(order), nil
}

func orderOutput(order domain.Order) dto.OrderOutput {
	out := dto.OrderOutput{
		ID:        order.ID,
		Total:     order.Total,
		Status:    string(order.Status),
		Name:      order.Customer.Name,
		Phone:     order.Customer.Phone,
		Address:   order.Customer.Address,
		CreatedAt: order.CreatedAt,
		Items:     make([]dto.ItemOutput, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		out.Items = append(out.Items, dto.ItemOutput{
			Article:      item.Article,
			Brand:        item.Brand,
			Description:  item.Description,
			Supplier:     item.Supplier,
			Price:        item.Price,
			DeliveryDays: item.DeliveryDays,
			Quantity:     item.Quantity,
		})
	}
	return out
}
