// Package main реализует точку входа адресной книги.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"contactbook/internal/contacts/adapters/cli"
	"contactbook/internal/contacts/app"
	"contactbook/internal/contacts/book"
	"contactbook/internal/contacts/config"
	"contactbook/pkg/logger"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "CONTACTS_LOGGER_MODE"
	EnvLoggerLevel = "CONTACTS_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrRunCLI               = "command loop failed"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted = "contacts started"
	LogServiceStopped = "contacts stopped"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	if err := logger.InitGlobalLoggerWithLevel(env, os.Getenv(EnvLoggerLevel)); err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.NewRequestIDContext(ctx, "")
	log := logger.Log(ctx)

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		addressBook := book.NewAddressBook()
		useCase := app.NewContactUseCase(addressBook)
		handler := cli.NewHandler(useCase, cli.Options{
			Prompt:          cfg.CLI.Prompt,
			PageSize:        cfg.Book.BatchSize,
			BirthdaysWindow: cfg.Book.BirthdaysWindow,
		})

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level))

		if err := handler.Run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, ErrRunCLI, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStopped, zap.Int("contacts", addressBook.Len()))
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
