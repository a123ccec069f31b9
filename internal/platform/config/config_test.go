package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"partshub/internal/platform/config"
)

func TestNewReadsFileAndAppliesEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := "api_base_url: https://file.example\nadmin_id: 111\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PARTSHUB_API_URL", "https://env.example/")
	t.Setenv("PARTSHUB_ADMIN_ID", "508352361")
	t.Setenv("PARTSHUB_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_INIT_DATA", "user=%7B%7D")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.APIBaseURL != "https://env.example" {
		t.Fatalf("expected env override with trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.AdminID != 508352361 {
		t.Fatalf("expected admin id override, got %d", cfg.AdminID)
	}
	if cfg.InitData == "" {
		t.Fatalf("expected init data from environment")
	}
	if cfg.DBPath != filepath.Join(dir, "partshub.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	t.Setenv("PARTSHUB_API_URL", "")
	t.Setenv("PARTSHUB_ADMIN_ID", "")
	t.Setenv("PARTSHUB_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_INIT_DATA", "")
	if _, err := config.New(t.TempDir()); err == nil {
		t.Fatalf("expected error without api base url")
	}
}

func TestNewRejectsBadAdminID(t *testing.T) {
	t.Setenv("PARTSHUB_API_URL", "https://env.example")
	t.Setenv("PARTSHUB_ADMIN_ID", "not-a-number")
	if _, err := config.New(t.TempDir()); err == nil {
		t.Fatalf("expected error for malformed admin id")
	}
}
