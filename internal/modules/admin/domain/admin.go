package domain

import "time"

// ActivityEntry is one row in the backend's activity feed.
type ActivityEntry struct {
	TelegramID int64
	Action     string
	Details    map[string]any
	Timestamp  time.Time
}

type UserSummary struct {
	TelegramID int64
	Username   string
	Name       string
	CreatedAt  time.Time
}

type QueryCount struct {
	Query string
	Count int
}

type Stats struct {
	TotalUsers     int
	TotalOrders    int
	TotalRevenue   float64
	TotalSearches  int
	PopularQueries []QueryCount
}

// Settings is the store-wide pricing configuration.
type Settings struct {
	MarkupPercent float64
	UpdatedAt     time.Time
}
