package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"partshub/internal/modules/identity/domain"
	"partshub/internal/modules/identity/dto"
	identityin "partshub/internal/modules/identity/port/in"
	identityout "partshub/internal/modules/identity/port/out"
)

const mirrorTimeout = 10 * time.Second

// HostBridge adapts the Mini App host environment. A single type serves
// both modes, branching on whether launch data was supplied, the same way
// the web client branched on the presence of init data.
type HostBridge struct {
	present  bool
	identity domain.Identity
	sink     identityin.DialogSink
	back     *backButton
	mirror   identityout.ChatMirror
	log      *zap.Logger
}

func NewHostBridge(initData, botToken string, mirror identityout.ChatMirror, log *zap.Logger) *HostBridge {
	bridge := &HostBridge{
		present:  initData != "",
		identity: domain.Preview(),
		back:     &backButton{},
		mirror:   mirror,
		log:      log,
	}
	if !bridge.present {
		return bridge
	}
	if botToken != "" {
		// Client-side only; the backend re-checks the signature. A bad
		// signature here usually means a stale bot token in the config.
		if err := domain.ValidateInitData(initData, botToken); err != nil {
			log.Warn("init data signature check failed", zap.Error(err))
		}
	}
	identity, err := domain.ParseInitData(initData)
	if err != nil {
		log.Warn("falling back to preview identity", zap.Error(err))
		return bridge
	}
	bridge.identity = identity
	return bridge
}

func (b *HostBridge) Present() bool { return b.present }

func (b *HostBridge) Identity() dto.IdentityOutput {
	return dto.IdentityOutput{
		TelegramID: b.identity.TelegramID,
		Username:   b.identity.Username,
		Name:       b.identity.Name,
	}
}

func (b *HostBridge) SetDialogSink(sink identityin.DialogSink) { b.sink = sink }

// Alert shows a dismissible message. In host mode it is also mirrored to
// the user's chat, best effort, on an independent context so a closed app
// still gets the notification.
func (b *HostBridge) Alert(message string, onDismiss func()) {
	if b.present && b.mirror != nil {
		chatID := b.identity.TelegramID
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
			defer cancel()
			if err := b.mirror.Send(ctx, chatID, message); err != nil {
				b.log.Warn("alert mirror failed", zap.Error(err))
			}
		}()
	}
	if b.sink == nil {
		b.log.Info("alert (no sink)", zap.String("message", message))
		if onDismiss != nil {
			onDismiss()
		}
		return
	}
	b.sink.ShowAlert(message, onDismiss)
}

// Confirm resolves only through onResult, never as a return value. With
// no sink registered the answer defaults to no.
func (b *HostBridge) Confirm(message string, onResult func(bool)) {
	if b.sink == nil {
		b.log.Info("confirm (no sink)", zap.String("message", message))
		if onResult != nil {
			onResult(false)
		}
		return
	}
	b.sink.ShowConfirm(message, onResult)
}

func (b *HostBridge) BackButton() identityin.BackButton {
	if b.present {
		return b.back
	}
	return noopBackButton{}
}

func (b *HostBridge) Init() {
	if b.present {
		b.log.Info("host ready, viewport expanded", zap.Int64("telegram_id", b.identity.TelegramID))
		return
	}
	b.log.Info("running in standalone preview mode")
}

type backButton struct {
	visible bool
	handler func()
}

func (b *backButton) Show()                  { b.visible = true }
func (b *backButton) Hide()                  { b.visible = false }
func (b *backButton) OnClick(handler func()) { b.handler = handler }
func (b *backButton) Visible() bool          { return b.visible }

func (b *backButton) Click() {
	if b.visible && b.handler != nil {
		b.handler()
	}
}

type noopBackButton struct{}

func (noopBackButton) Show()          {}
func (noopBackButton) Hide()          {}
func (noopBackButton) OnClick(func()) {}
func (noopBackButton) Click()         {}
func (noopBackButton) Visible() bool  { return false }
