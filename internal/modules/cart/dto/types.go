package dto

type LineInput struct {
	Article      string
	Brand        string
	Description  string
	Supplier     string
	Price        float64
	DeliveryDays int
	Quantity     int
}

type LineOutput struct {
	Article      string
	Brand        string
	Description  string
	Supplier     string
	Price        float64
	DeliveryDays int
	Quantity     int
	Subtotal     float64
}

type CartOutput struct {
	Lines []LineOutput
	Total float64
	Count int
}
