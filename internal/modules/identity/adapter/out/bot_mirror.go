package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// BotMirror delivers alert text to the user's chat through the Bot API,
// so notifications survive the Mini App being closed mid-operation.
type BotMirror struct {
	token  string
	client *http.Client
}

func NewBotMirror(token string) *BotMirror {
	return &BotMirror{token: token, client: &http.Client{}}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

func (m *BotMirror) Send(ctx context.Context, chatID int64, text string) error {
	payload, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("encode sendMessage: %w", err)
	}
	url := "https://api.telegram.org/bot" + m.token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sendMessage: status %d", resp.StatusCode)
	}
	return nil
}
