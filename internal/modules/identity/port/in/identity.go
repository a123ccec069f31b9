package in

import (
	"context"

	"partshub/internal/modules/identity/dto"
)

type Usecase interface {
	// Resolve returns the session identity and registers it with the
	// backend, best effort.
	Resolve(ctx context.Context) (dto.IdentityOutput, error)
}

// DialogSink is the surface that actually renders host dialogs. The UI
// registers one before the first screen mounts.
type DialogSink interface {
	ShowAlert(message string, onDismiss func())
	ShowConfirm(message string, onResult func(bool))
}

// BackButton is the host back affordance. Outside the host every method
// is a no-op; on-screen back actions navigate directly instead.
type BackButton interface {
	Show()
	Hide()
	OnClick(handler func())
	// Click delivers the host gesture to the registered handler.
	Click()
	Visible() bool
}

// Bridge is the capability set of the surrounding host container. One
// implementation serves both modes; behavior branches on Present, the
// way the original wrapper branched on the presence of launch data.
type Bridge interface {
	Present() bool
	Identity() dto.IdentityOutput
	Alert(message string, onDismiss func())
	Confirm(message string, onResult func(bool))
	BackButton() BackButton
	Init()
	SetDialogSink(sink DialogSink)
}
