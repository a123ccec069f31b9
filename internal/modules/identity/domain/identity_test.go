package domain_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"

	"partshub/internal/modules/identity/domain"
)

func TestParseInitData(t *testing.T) {
	t.Parallel()
	values := url.Values{}
	values.Set("user", `{"id":42,"username":"garagist","first_name":"Ivan","last_name":"Petrov"}`)
	values.Set("auth_date", "1700000000")

	identity, err := domain.ParseInitData(values.Encode())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if identity.TelegramID != 42 {
		t.Fatalf("expected id 42, got %d", identity.TelegramID)
	}
	if identity.Username != "garagist" {
		t.Fatalf("expected username, got %q", identity.Username)
	}
	if identity.Name != "Ivan Petrov" {
		t.Fatalf("expected joined name, got %q", identity.Name)
	}
}

func TestParseInitDataRejectsMissingUser(t *testing.T) {
	t.Parallel()
	if _, err := domain.ParseInitData("auth_date=1700000000"); err == nil {
		t.Fatalf("expected error for missing user")
	}
	if _, err := domain.ParseInitData("user=%7B%22id%22%3A0%7D"); err == nil {
		t.Fatalf("expected error for zero id")
	}
}

func TestValidateInitData(t *testing.T) {
	t.Parallel()
	const token = "12345:test-token"
	values := url.Values{}
	values.Set("user", `{"id":42,"username":"garagist"}`)
	values.Set("auth_date", "1700000000")
	values.Set("hash", sign(values, token))

	if err := domain.ValidateInitData(values.Encode(), token); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := domain.ValidateInitData(values.Encode(), "wrong-token"); err == nil {
		t.Fatalf("expected signature mismatch for wrong token")
	}

	values.Set("user", `{"id":99}`) // tampered after signing
	if err := domain.ValidateInitData(values.Encode(), token); err == nil {
		t.Fatalf("expected signature mismatch for tampered payload")
	}
}

// sign reproduces the host side of the Mini App signature.
func sign(values url.Values, token string) string {
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
	secret.Write([]byte(token))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}
