package out

import (
	"context"
	"fmt"

	"partshub/internal/modules/cart/domain"
	"partshub/internal/platform/rest"
)

// CartClient talks to the backend cart endpoints.
type CartClient struct {
	api *rest.Client
}

func NewCartClient(api *rest.Client) *CartClient {
	return &CartClient{api: api}
}

type wireItem struct {
	Article      string  `json:"article"`
	Brand        string  `json:"brand"`
	Description  string  `json:"description"`
	Supplier     string  `json:"supplier"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"delivery_days"`
	Quantity     int     `json:"quantity"`
}

type cartResponse struct {
	Items []wireItem `json:"items"`
}

type addRequest struct {
	TelegramID int64    `json:"telegram_id"`
	Item       wireItem `json:"item"`
}

type updateRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Article    string `json:"article"`
	Quantity   int    `json:"quantity"`
}

type removeRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Article    string `json:"article"`
}

func (c *CartClient) Fetch(ctx context.Context, telegramID int64) (domain.Cart, error) {
	var resp cartResponse
	if err := c.api.Get(ctx, fmt.Sprintf("/cart/%d", telegramID), &resp); err != nil {
		return domain.Cart{}, err
	}
	cart := domain.Cart{Lines: make([]domain.Line, 0, len(resp.Items))}
	for _, item := range resp.Items {
		cart.Lines = append(cart.Lines, domain.Line{
			Article:      item.Article,
			Brand:        item.Brand,
			Description:  item.Description,
			Supplier:     item.Supplier,
			Price:        item.Price,
			DeliveryDays: item.DeliveryDays,
			Quantity:     item.Quantity,
		})
	}
	return cart, nil
}

func (c *CartClient) Add(ctx context.Context, telegramID int64, line domain.Line) error {
	return c.api.Post(ctx, "/cart/add", addRequest{
		TelegramID: telegramID,
		Item: wireItem{
			Article:      line.Article,
			Brand:        line.Brand,
			Description:  line.Description,
			Supplier:     line.Supplier,
			Price:        line.Price,
			DeliveryDays: line.DeliveryDays,
			Quantity:     line.Quantity,
		},
	}, nil)
}

func (c *CartClient) Update(ctx context.Context, telegramID int64, article string, quantity int) error {
	return c.api.Post(ctx, "/cart/update", updateRequest{
		TelegramID: telegramID,
		Article:    article,
		Quantity:   quantity,
	}, nil)
}

func (c *CartClient) Remove(ctx context.Context, telegramID int64, article string) error {
	return c.api.Post(ctx, "/cart/remove", removeRequest{
		TelegramID: telegramID,
		Article:    article,
	}, nil)
}
