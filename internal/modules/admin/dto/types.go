package dto

import "time"

type ActivityOutput struct {
	TelegramID int64
	Action     string
	Details    map[string]any
	Timestamp  time.Time
}

type UserOutput struct {
	TelegramID int64
	Username   string
	Name       string
	CreatedAt  time.Time
}

type QueryCountOutput struct {
	Query string
	Count int
}

type StatsOutput struct {
	TotalUsers     int
	TotalOrders    int
	TotalRevenue   float64
	TotalSearches  int
	PopularQueries []QueryCountOutput
}

type SettingsOutput struct {
	MarkupPercent float64
	UpdatedAt     time.Time
}
