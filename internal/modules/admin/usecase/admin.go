package usecase

import (
	"context"

	"partshub/internal/modules/admin/dto"
	"partshub/internal/modules/admin/service"
)

type Interactor struct {
	admin *service.Admin
}

func New(admin *service.Admin) *Interactor {
	return &Interactor{admin: admin}
}

func (i *Interactor) IsAdmin() bool { return i.admin.IsAdmin() }

func (i *Interactor) Activity(ctx context.Context, limit, skip int) ([]dto.ActivityOutput, error) {
	entries, err := i.admin.Activity(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.ActivityOutput{
			TelegramID: entry.TelegramID,
			Action:     entry.Action,
			Details:    entry.Details,
			Timestamp:  entry.Timestamp,
		})
	}
	return out, nil
}

func (i *Interactor) Users(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := i.admin.Users(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserOutput, 0, len(users))
	for _, user := range users {
		out = append(out, dto.UserOutput{
			TelegramID: user.TelegramID,
			Username:   user.Username,
			Name:       user.Name,
			CreatedAt:  user.CreatedAt,
		})
	}
	return out, nil
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	stats, err := i.admin.Stats(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	out := dto.StatsOutput{
		TotalUsers:     stats.TotalUsers,
		TotalOrders:    stats.TotalOrders,
		TotalRevenue:   stats.TotalRevenue,
		TotalSearches:  stats.TotalSearches,
		PopularQueries: make([]dto.QueryCountOutput, 0, len(stats.PopularQueries)),
	}
	for _, q := range stats.PopularQueries {
		out.PopularQueries = append(out.PopularQueries, dto.QueryCountOutput{Query: q.Query, Count: q.Count})
	}
	return out, nil
}

func (i *Interactor) Settings(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.admin.Settings(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return dto.SettingsOutput{MarkupPercent: settings.MarkupPercent, UpdatedAt: settings.UpdatedAt}, nil
}

func (i *Interactor) UpdateMarkup(ctx context.Context, percent float64) error {
	return i.admin.UpdateMarkup(ctx, percent)
}
