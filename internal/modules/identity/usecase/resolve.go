package usecase

import (
	"context"

	"go.uber.org/zap"

	"partshub/internal/modules/identity/domain"
	"partshub/internal/modules/identity/dto"
	identityin "partshub/internal/modules/identity/port/in"
	identityout "partshub/internal/modules/identity/port/out"
)

type Interactor struct {
	bridge identityin.Bridge
	users  identityout.UserAPI
	log    *zap.Logger
}

func New(bridge identityin.Bridge, users identityout.UserAPI, log *zap.Logger) *Interactor {
	return &Interactor{bridge: bridge, users: users, log: log}
}

// Resolve returns the current identity and registers it with the backend.
// Registration is best effort, the client stays usable when it fails.
func (i *Interactor) Resolve(ctx context.Context) (dto.IdentityOutput, error) {
	id := i.bridge.Identity()
	err := i.users.Upsert(ctx, domain.Identity{
		TelegramID: id.TelegramID,
		Username:   id.Username,
		Name:       id.Name,
	})
	if err != nil {
		i.log.Warn("user registration failed", zap.Int64("telegram_id", id.TelegramID), zap.Error(err))
	}
	return id, nil
}
