package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource DataSourceConfig `yaml:"data_source" env:", prefix=INDIAN_API_"`
	Proxy      string           `yaml:"proxy" env:"HTTPS_PROXY, overwrite"`
	Database   DatabaseConfig   `yaml:"database"`
	Scan       ScanConfig       `yaml:"scan" env:", prefix=SCAN_"`
	Telegram   TelegramConfig   `yaml:"telegram" env:", prefix=TELEGRAM_"`
	Logging    LoggingConfig    `yaml:"logging" env:", prefix=LOG_"`
	Rates      RatesConfig      `yaml:"rates"`
}

// DataSourceConfig points at the market data API.
type DataSourceConfig struct {
	BaseURL string        `yaml:"base_url" env:"BASE_URL, overwrite"`
	APIKey  string        `yaml:"api_key" env:"KEY, overwrite"`
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT, overwrite"`
}

// DatabaseConfig locates the journal database. An empty path disables it.
type DatabaseConfig struct {
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH, overwrite"`
}

// ScanConfig drives the scheduled watchlist scan.
type ScanConfig struct {
	Cron    string   `yaml:"cron" env:"CRON, overwrite"`
	Symbols []string `yaml:"symbols" env:"SYMBOLS, overwrite"`
	Period  string   `yaml:"period" env:"PERIOD, overwrite"`
}

// TelegramConfig enables the scan digest when both fields are set.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"BOT_TOKEN, overwrite"`
	ChatID   string `yaml:"chat_id" env:"CHAT_ID, overwrite"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL, overwrite"`
	Format string `yaml:"format" env:"FORMAT, overwrite"`
}

// RatesConfig optionally overrides the built-in deposit rate table.
type RatesConfig struct {
	File string `yaml:"file" env:"RATES_FILE, overwrite"`
}

const (
	DefaultBaseURL    = "https://stock.indianapi.in"
	DefaultTimeout    = 10 * time.Second
	DefaultSQLitePath = "data/finsentinel.db"
	DefaultScanCron   = "0 45 15 * * 1-5"
	DefaultScanPeriod = "1yr"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

var validPeriods = map[string]bool{"7d": true, "1mo": true, "3mo": true, "6mo": true, "1yr": true}

// Load reads config from a YAML file, then .env, then environment variable
// overrides, and finally fills defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("ignoring .env: %v", err)
	}
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataSource.BaseURL == "" {
		c.DataSource.BaseURL = DefaultBaseURL
	}
	if c.DataSource.Timeout == 0 {
		c.DataSource.Timeout = DefaultTimeout
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = DefaultSQLitePath
	}
	if c.Scan.Cron == "" {
		c.Scan.Cron = DefaultScanCron
	}
	if c.Scan.Period == "" {
		c.Scan.Period = DefaultScanPeriod
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	for i, s := range c.Scan.Symbols {
		c.Scan.Symbols[i] = strings.ToUpper(strings.TrimSpace(s))
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.DataSource.APIKey == "" {
		return fmt.Errorf("data_source.api_key is required")
	}
	if c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required")
	}
	if c.DataSource.Timeout < 0 {
		return fmt.Errorf("data_source.timeout must not be negative")
	}
	if !validPeriods[strings.ToLower(c.Scan.Period)] {
		return fmt.Errorf("scan.period %q is not one of 7d, 1mo, 3mo, 6mo, 1yr", c.Scan.Period)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be text or json")
	}
	return nil
}

// TelegramEnabled reports whether the scan digest can be sent.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
