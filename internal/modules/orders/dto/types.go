package dto

import "time"

type CheckoutInput struct {
	Name    string
	Phone   string
	Address string
}

type ConfirmationOutput struct {
	OrderID string
	Total   float64
}

type ItemOutput struct {
	Article      string
	Brand        string
	Description  string
	Supplier     string
	Price        float64
	DeliveryDays int
	Quantity     int
}

type OrderOutput struct {
	ID        string
	Items     []ItemOutput
	Total     float64
	Status    string
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
}
