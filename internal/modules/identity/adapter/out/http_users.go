package out

import (
	"context"

	"partshub/internal/modules/identity/domain"
	"partshub/internal/platform/rest"
)

// UserClient registers Telegram users with the backend.
type UserClient struct {
	api *rest.Client
}

func NewUserClient(api *rest.Client) *UserClient {
	return &UserClient{api: api}
}

type userPayload struct {
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
}

func (c *UserClient) Upsert(ctx context.Context, id domain.Identity) error {
	body := userPayload{TelegramID: id.TelegramID, Username: id.Username, Name: id.Name}
	return c.api.Post(ctx, "/users", body, nil)
}
