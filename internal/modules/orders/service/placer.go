package service

import (
	"context"

	"go.uber.org/zap"

	"partshub/internal/modules/orders/domain"
	ordersout "partshub/internal/modules/orders/port/out"
	apperrors "partshub/internal/platform/errors"
)

type Placer struct {
	api        ordersout.API
	cart       ordersout.CartGateway
	telegramID int64
	log        *zap.Logger
}

func NewPlacer(api ordersout.API, cart ordersout.CartGateway, telegramID int64, log *zap.Logger) *Placer {
	return &Placer{api: api, cart: cart, telegramID: telegramID, log: log}
}

func (p *Placer) Place(ctx context.Context, customer domain.CustomerInfo) (string, float64, error) {
	if err := customer.Validate(); err != nil {
		return "", 0, err
	}
	if p.cart.Empty() {
		return "", 0, apperrors.ErrEmptyCart
	}
	orderID, total, err := p.api.Create(ctx, p.telegramID, customer)
	if err != nil {
		return "", 0, err
	}
	p.cart.Clear()
	p.log.Info("order placed", zap.String("order_id", orderID), zap.Float64("total", total))
	return orderID, total, nil
}

func (p *Placer) List(ctx context.Context) ([]domain.Order, error) {
	return p.api.List(ctx, p.telegramID)
}

func (p *Placer) Get(ctx context.Context, orderID string) (domain.Order, error) {
	if orderID == "" {
		return domain.Order{}, apperrors.ErrInvalidInput
	}
	return p.api.Get(ctx, orderID)
}
