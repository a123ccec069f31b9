package domain

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Identity is the user as the host launched us: an opaque numeric id plus
// optional display fields. Resolved once at startup, never mutated.
type Identity struct {
	TelegramID int64
	Username   string
	Name       string
}

// Preview is the fixed identity used when the app runs outside the host,
// so every screen stays reachable in standalone mode.
func Preview() Identity {
	return Identity{
		TelegramID: 123456789,
		Username:   "testuser",
		Name:       "Test User (Preview Mode)",
	}
}

type initDataUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ParseInitData extracts the identity from the host launch payload, a
// URL-encoded query string whose "user" field is a JSON object.
func ParseInitData(initData string) (Identity, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return Identity{}, fmt.Errorf("parse init data: %w", err)
	}
	raw := values.Get("user")
	if raw == "" {
		return Identity{}, fmt.Errorf("init data has no user field")
	}
	var user initDataUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return Identity{}, fmt.Errorf("decode init data user: %w", err)
	}
	if user.ID == 0 {
		return Identity{}, fmt.Errorf("init data user has no id")
	}
	return Identity{
		TelegramID: user.ID,
		Username:   user.Username,
		Name:       strings.TrimSpace(strings.TrimSpace(user.FirstName) + " " + strings.TrimSpace(user.LastName)),
	}, nil
}

// ValidateInitData checks the payload signature against the bot token per
// the Mini App contract: the hash field must equal
// HMAC-SHA256(data-check-string, HMAC-SHA256(token, "WebAppData")).
func ValidateInitData(initData, botToken string) error {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return fmt.Errorf("parse init data: %w", err)
	}
	gotHash := values.Get("hash")
	if gotHash == "" {
		return fmt.Errorf("init data has no hash")
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		if key == "hash" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+values.Get(key))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))
	want := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(want), []byte(gotHash)) {
		return fmt.Errorf("init data signature mismatch")
	}
	return nil
}
