// Package config содержит конфигурацию сервиса контактов.
package config

import (
	"context"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"contactbook/pkg/logger"
)

// Константы сообщений конфигурации.
const (
	LogLoadingConfig    = "loading contacts configuration"
	LogConfigLoaded     = "configuration loaded successfully"
	ErrFailedLoadConfig = "failed to load configuration"
)

// Config представляет полную конфигурацию приложения.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Book    BookConfig    `yaml:"book"`
	CLI     CLIConfig     `yaml:"cli"`
}

// Load загружает конфигурацию из переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("batch_size", cfg.Book.BatchSize),
		zap.Int("birthdays_window_days", cfg.Book.BirthdaysWindow))

	return &cfg, nil
}
