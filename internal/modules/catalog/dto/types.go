package dto

import "time"

// ArticleSearchInput carries the query plus the listing filters the
// backend understands.
type ArticleSearchInput struct {
	Article string
	// Availability is "in_stock_tyumen", "on_order" or empty.
	Availability string
	// SortBy is "price_asc", "price_desc", "delivery_asc" or empty.
	SortBy string
}

type PartOutput struct {
	Article      string
	Brand        string
	Description  string
	Supplier     string
	Price        float64
	DeliveryDays int
	InStock      bool
}

type VINSearchInput struct {
	VIN      string
	PartName string
}

type OEMPartOutput struct {
	Article string
	Name    string
	Source  string
}

type VINSearchOutput struct {
	VIN          string
	VehicleBrand string
	VehicleName  string
	Parts        []OEMPartOutput
}

type HistoryOutput struct {
	Query   string
	Kind    string
	Results int
	At      time.Time
}
