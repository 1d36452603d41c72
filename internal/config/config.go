// Load envs from .env
// Load YAML config
// Override with env vars
// Provide default values and validate

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

var ErrTelegramNotConfigured = errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required")

type Config struct {
	DatabaseURL    string   `yaml:"database_url" env:"DATABASE_URL"`
	Port           string   `yaml:"port" env:"PORT"`
	LogLevel       string   `yaml:"log_level" env:"LOG_LEVEL"`
	PublicBaseURL  string   `yaml:"public_base_url" env:"PUBLIC_BASE_URL"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Editor sessions
	SessionTTL time.Duration `yaml:"session_ttl"`
	SweepEvery time.Duration `yaml:"session_sweep_interval"`

	EnablePDF bool   `yaml:"enable_pdf"`
	CachePath string `yaml:"cache_path"`
}

// Load reads .env, then the YAML file named by JOBBOARD_CONFIG (or
// configs/config.yaml), then the environment. A missing YAML file is not an
// error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("JOBBOARD_CONFIG")
	if path == "" {
		path = DefaultPath
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	//Override with env vars
	for env, dst := range map[string]*string{
		"DATABASE_URL":       &c.DatabaseURL,
		"PORT":               &c.Port,
		"LOG_LEVEL":          &c.LogLevel,
		"PUBLIC_BASE_URL":    &c.PublicBaseURL,
		"TELEGRAM_BOT_TOKEN": &c.TelegramToken,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.TelegramChatID = id
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PublicBaseURL == "" {
		c.PublicBaseURL = "http://localhost:" + c.Port
	}
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	if c.SessionTTL <= 0 {
		c.SessionTTL = 2 * time.Hour
	}
	if c.SweepEvery <= 0 {
		c.SweepEvery = 10 * time.Minute
	}
	if c.CachePath == "" {
		c.CachePath = ".cache"
	}
}

// RequireTelegram reports whether announcements can be sent.
func (c *Config) RequireTelegram() error {
	if c.TelegramToken == "" || c.TelegramChatID == 0 {
		return ErrTelegramNotConfigured
	}
	return nil
}
