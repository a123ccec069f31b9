package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries everything the client needs to reach the backend and the
// host environment. File values come from <stateDir>/config.yaml; the
// PARTSHUB_* / TELEGRAM_* environment variables override the file.
type Config struct {
	APIBaseURL string `yaml:"api_base_url"`
	AdminID    int64  `yaml:"admin_id"`
	BotToken   string `yaml:"bot_token"`

	// InitData is the raw Telegram Mini App launch payload. It is only
	// ever supplied through the environment by the launching host.
	InitData string `yaml:"-"`

	StateDir string `yaml:"-"`
	DBPath   string `yaml:"-"`
	LogPath  string `yaml:"-"`
}

func New(stateDir string) (Config, error) {
	if stateDir == "" {
		return Config{}, fmt.Errorf("state dir is required")
	}
	cfg := Config{
		StateDir: stateDir,
		DBPath:   filepath.Join(stateDir, "partshub.db"),
		LogPath:  filepath.Join(stateDir, "partshub.log"),
	}

	raw, err := os.ReadFile(filepath.Join(stateDir, "config.yaml"))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv("PARTSHUB_API_URL")); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("PARTSHUB_ADMIN_ID")); v != "" {
		adminID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse PARTSHUB_ADMIN_ID: %w", err)
		}
		cfg.AdminID = adminID
	}
	if v := strings.TrimSpace(os.Getenv("PARTSHUB_BOT_TOKEN")); v != "" {
		cfg.BotToken = v
	}
	cfg.InitData = os.Getenv("TELEGRAM_INIT_DATA")

	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("api base url is required (config.yaml api_base_url or PARTSHUB_API_URL)")
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return cfg, nil
}
