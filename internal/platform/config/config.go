package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Seed   SeedConfig   `yaml:"seed"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"WORKFORCE_LISTEN_ADDR"`
}

// LogConfig はログ出力に関する設定です。File が空の場合は標準出力に書き込みます。
type LogConfig struct {
	Level      string `yaml:"level"        env:"WORKFORCE_LOG_LEVEL"`
	Format     string `yaml:"format"       env:"WORKFORCE_LOG_FORMAT"`
	File       string `yaml:"file"         env:"WORKFORCE_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"WORKFORCE_LOG_MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups"  env:"WORKFORCE_LOG_MAX_BACKUPS"`
	MaxAgeDays int    `yaml:"max_age_days" env:"WORKFORCE_LOG_MAX_AGE_DAYS"`
	Compress   bool   `yaml:"compress"     env:"WORKFORCE_LOG_COMPRESS"`
}

// SeedConfig は起動時に投入するサンプルデータの設定です。
type SeedConfig struct {
	SampleData          bool `yaml:"sample_data"          env:"WORKFORCE_SEED_SAMPLE_DATA"`
	SampleNotifications bool `yaml:"sample_notifications" env:"WORKFORCE_SEED_SAMPLE_NOTIFICATIONS"`
}

const (
	LogFormatText = "text"
	LogFormatJSON = "json"

	defaultLogLevel   = "info"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// Load は指定されたパスから設定ファイルを読み込み、環境変数で上書きします。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Log.validateAndNormalize(); err != nil {
		return err
	}

	return nil
}

func (l *LogConfig) validateAndNormalize() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	if l.Level == "" {
		l.Level = defaultLogLevel
	}

	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	switch l.Format {
	case "":
		l.Format = LogFormatText
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("config: log.format must be %q or %q, got %q", LogFormatText, LogFormatJSON, l.Format)
	}

	if l.MaxSizeMB < 0 || l.MaxBackups < 0 || l.MaxAgeDays < 0 {
		return fmt.Errorf("config: log rotation values must not be negative")
	}
	if l.MaxSizeMB == 0 {
		l.MaxSizeMB = defaultMaxSizeMB
	}
	if l.MaxBackups == 0 {
		l.MaxBackups = defaultMaxBackups
	}
	if l.MaxAgeDays == 0 {
		l.MaxAgeDays = defaultMaxAgeDays
	}

	return nil
}
