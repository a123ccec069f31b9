package domain

import (
	"strings"
	"time"

	apperrors "partshub/internal/platform/errors"
)

type Status string

const (
	StatusNew        Status = "new"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// CustomerInfo is the delivery contact collected at checkout.
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

// Validate requires name and phone. Address can stay empty for pickup.
func (c CustomerInfo) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Phone) == "" {
		return apperrors.ErrInvalidInput
	}
	return nil
}

type Item struct {
	Article      string
	Brand        string
	Description  string
	Supplier     string
	Price        float64
	DeliveryDays int
	Quantity     int
}

type Order struct {
	ID        string
	Items     []Item
	Total     float64
	Status    Status
	Customer  CustomerInfo
	CreatedAt time.Time
}
