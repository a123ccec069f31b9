package out

import (
	"context"
	"fmt"
	"time"

	"partshub/internal/modules/admin/domain"
	"partshub/internal/platform/rest"
)

type AdminClient struct {
	api *rest.Client
}

func NewAdminClient(api *rest.Client) *AdminClient {
	return &AdminClient{api: api}
}

func (c *AdminClient) Activity(ctx context.Context, limit, skip int) ([]domain.ActivityEntry, error) {
	var resp struct {
		Logs []struct {
			TelegramID int64          `json:"telegram_id"`
			Action     string         `json:"action"`
			Details    map[string]any `json:"details"`
			Timestamp  string         `json:"timestamp"`
		} `json:"logs"`
	}
	path := fmt.Sprintf("/admin/activity?limit=%d&skip=%d", limit, skip)
	if err := c.api.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	entries := make([]domain.ActivityEntry, 0, len(resp.Logs))
	for _, log := range resp.Logs {
		entries = append(entries, domain.ActivityEntry{
			TelegramID: log.TelegramID,
			Action:     log.Action,
			Details:    log.Details,
			Timestamp:  parseTimestamp(log.Timestamp),
		})
	}
	return entries, nil
}

func (c *AdminClient) Users(ctx context.Context) ([]domain.UserSummary, error) {
	var resp struct {
		Users []struct {
			TelegramID int64  `json:"telegram_id"`
			Username   string `json:"username"`
			Name       string `json:"name"`
			CreatedAt  string `json:"created_at"`
		} `json:"users"`
	}
	if err := c.api.Get(ctx, "/admin/users", &resp); err != nil {
		return nil, err
	}
	users := make([]domain.UserSummary, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, domain.UserSummary{
			TelegramID: u.TelegramID,
			Username:   u.Username,
			Name:       u.Name,
			CreatedAt:  parseTimestamp(u.CreatedAt),
		})
	}
	return users, nil
}

func (c *AdminClient) Stats(ctx context.Context) (domain.Stats, error) {
	var resp struct {
		Stats struct {
			TotalUsers    int     `json:"total_users"`
			TotalOrders   int     `json:"total_orders"`
			TotalRevenue  float64 `json:"total_revenue"`
			TotalSearches int     `json:"total_searches"`
		} `json:"stats"`
		PopularQueries []struct {
			Query string `json:"_id"`
			Count int    `json:"count"`
		} `json:"popular_queries"`
	}
	if err := c.api.Get(ctx, "/admin/stats", &resp); err != nil {
		return domain.Stats{}, err
	}
	stats := domain.Stats{
		TotalUsers:     resp.Stats.TotalUsers,
		TotalOrders:    resp.Stats.TotalOrders,
		TotalRevenue:   resp.Stats.TotalRevenue,
		TotalSearches:  resp.Stats.TotalSearches,
		PopularQueries: make([]domain.QueryCount, 0, len(resp.PopularQueries)),
	}
	for _, q := range resp.PopularQueries {
		stats.PopularQueries = append(stats.PopularQueries, domain.QueryCount{Query: q.Query, Count: q.Count})
	}
	return stats, nil
}

func (c *AdminClient) Settings(ctx context.Context) (domain.Settings, error) {
	var resp struct {
		Settings struct {
			MarkupPercent float64 `json:"markup_percent"`
			UpdatedAt     string  `json:"updated_at"`
		} `json:"settings"`
	}
	if err := c.api.Get(ctx, "/admin/settings", &resp); err != nil {
		return domain.Settings{}, err
	}
	return domain.Settings{
		MarkupPercent: resp.Settings.MarkupPercent,
		UpdatedAt:     parseTimestamp(resp.Settings.UpdatedAt),
	}, nil
}

type settingsRequest struct {
	MarkupPercent float64 `json:"markup_percent"`
	TelegramID    int64   `json:"telegram_id"`
}

func (c *AdminClient) UpdateSettings(ctx context.Context, telegramID int64, markupPercent float64) error {
	return c.api.Post(ctx, "/admin/settings", settingsRequest{
		MarkupPercent: markupPercent,
		TelegramID:    telegramID,
	}, nil)
}

func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
