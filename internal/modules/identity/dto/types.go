package dto

type IdentityOutput struct {
	TelegramID int64
	Username   string
	Name       string
}
