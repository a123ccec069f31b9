package out

import (
	"context"

	"partshub/internal/modules/identity/domain"
)

// UserAPI creates or updates the backend user record for this session.
type UserAPI interface {
	Upsert(ctx context.Context, identity domain.Identity) error
}

// ChatMirror pushes a message to the user's chat through the bot, so
// host-mode alerts survive the Mini App being closed.
type ChatMirror interface {
	Send(ctx context.Context, chatID int64, text string) error
}
