package out

import (
	"context"
	"fmt"
	"time"

	"partshub/internal/modules/orders/domain"
	"partshub/internal/platform/rest"
)

type OrdersClient struct {
	api *rest.Client
}

func NewOrdersClient(api *rest.Client) *OrdersClient {
	return &OrdersClient{api: api}
}

type userInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type createRequest struct {
	TelegramID int64    `json:"telegram_id"`
	UserInfo   userInfo `json:"user_info"`
}

type createResponse struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
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

type wireOrder struct {
	ID        string     `json:"id"`
	Items     []wireItem `json:"items"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"`
	UserInfo  userInfo   `json:"user_info"`
	CreatedAt string     `json:"created_at"`
}

type listResponse struct {
	Orders []wireOrder `json:"orders"`
}

func (c *OrdersClient) Create(ctx context.Context, telegramID int64, customer domain.CustomerInfo) (string, float64, error) {
	req := createRequest{
		TelegramID: telegramID,
		UserInfo:   userInfo{Name: customer.Name, Phone: customer.Phone, Address: customer.Address},
	}
	var resp createResponse
	if err := c.api.Post(ctx, "/orders", req, &resp); err != nil {
		return "", 0, err
	}
	return resp.OrderID, resp.Total, nil
}

func (c *OrdersClient) List(ctx context.Context, telegramID int64) ([]domain.Order, error) {
	var resp listResponse
	if err := c.api.Get(ctx, fmt.Sprintf("/orders/%d", telegramID), &resp); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(resp.Orders))
	for _, o := range resp.Orders {
		orders = append(orders, toDomain(o))
	}
	return orders, nil
}

func (c *OrdersClient) Get(ctx context.Context, orderID string) (domain.Order, error) {
	var o wireOrder
	if err := c.api.Get(ctx, "/orders/detail/"+orderID, &o); err != nil {
		return domain.Order{}, err
	}
	return toDomain(o), nil
}

func toDomain(o wireOrder) domain.Order {
	order := domain.Order{
		ID:     o.ID,
		Total:  o.Total,
		Status: domain.Status(o.Status),
		Customer: domain.CustomerInfo{
			Name:    o.UserInfo.Name,
			Phone:   o.UserInfo.Phone,
			Address: o.UserInfo.Address,
		},
		Items: make([]domain.Item, 0, len(o.Items)),
	}
	// The backend writes RFC 3339 without a zone marker on some rows.
	if t, err := time.Parse(time.RFC3339, o.CreatedAt); err == nil {
		order.CreatedAt = t
	} else if t, err := time.Parse("2006-01-02T15:04:05", o.CreatedAt); err == nil {
		order.CreatedAt = t.UTC()
	}
	for _, item := range o.Items {
		order.Items = append(order.Items, domain.Item{
			Article:      item.Article,
			Brand:        item.Brand,
			Description:  item.Description,
			Supplier:     item.Supplier,
			Price:        item.Price,
			DeliveryDays: item.DeliveryDays,
			Quantity:     item.Quantity,
		})
	}
	return order
}
