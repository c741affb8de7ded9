// Пакет config — загрузка и валидация конфигурации консоли каталога
// из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Версия приложения, задаётся при сборке через -ldflags.
var Version = "dev"

// env — сырые значения переменных окружения до валидации.
type env struct {
	Port            int           `env:"CC_PORT" env-default:"8080" env-description:"Порт HTTP-сервера"`
	LogLevel        string        `env:"CC_LOG_LEVEL" env-default:"info" env-description:"Уровень логирования: debug, info, warn, error"`
	LogFormat       string        `env:"CC_LOG_FORMAT" env-default:"json" env-description:"Формат логов: json, text"`
	SeedFile        string        `env:"CC_SEED_FILE" env-description:"Путь к YAML с начальными данными (по умолчанию встроенный набор)"`
	DefaultLanguage string        `env:"CC_DEFAULT_LANGUAGE" env-default:"ru" env-description:"Язык UI по умолчанию: ru, en"`
	UIEnabled       bool          `env:"CC_UI_ENABLED" env-default:"true" env-description:"Включить HTML-интерфейс"`
	APIEnabled      bool          `env:"CC_API_ENABLED" env-default:"true" env-description:"Включить JSON API"`
	ShutdownTimeout time.Duration `env:"CC_SHUTDOWN_TIMEOUT" env-default:"5s" env-description:"Таймаут graceful shutdown"`
}

// Config содержит все параметры конфигурации консоли.
type Config struct {
	// --- Сервер ---

	// Порт HTTP-сервера (диапазон 1024-65535)
	Port int
	// Уровень логирования (debug, info, warn, error)
	LogLevel slog.Level
	// Формат логов (json, text)
	LogFormat string

	// --- Данные ---

	// Путь к seed-файлу; пустая строка — встроенный набор
	SeedFile string

	// --- Интерфейсы ---

	// Язык UI, если ни cookie, ни Accept-Language его не задают
	DefaultLanguage string
	UIEnabled       bool
	APIEnabled      bool

	// --- Graceful shutdown ---

	// Таймаут graceful shutdown HTTP-сервера
	ShutdownTimeout time.Duration
}

// Load загружает конфигурацию из переменных окружения, валидирует
// значения и возвращает Config или ошибку.
func Load() (*Config, error) {
	var raw env
	if err := cleanenv.ReadEnv(&raw); err != nil {
		return nil, fmt.Errorf("чтение переменных окружения: %w", err)
	}

	cfg := &Config{
		Port:            raw.Port,
		LogFormat:       raw.LogFormat,
		SeedFile:        raw.SeedFile,
		DefaultLanguage: strings.ToLower(raw.DefaultLanguage),
		UIEnabled:       raw.UIEnabled,
		APIEnabled:      raw.APIEnabled,
		ShutdownTimeout: raw.ShutdownTimeout,
	}

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("CC_PORT: значение %d вне допустимого диапазона 1024-65535", cfg.Port)
	}

	var err error
	cfg.LogLevel, err = parseLogLevel(raw.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("CC_LOG_LEVEL: %w", err)
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("CC_LOG_FORMAT: недопустимое значение %q, допустимые: json, text", cfg.LogFormat)
	}

	if cfg.DefaultLanguage != "ru" && cfg.DefaultLanguage != "en" {
		return nil, fmt.Errorf("CC_DEFAULT_LANGUAGE: недопустимое значение %q, допустимые: ru, en", cfg.DefaultLanguage)
	}

	if cfg.SeedFile != "" {
		if _, err := os.Stat(cfg.SeedFile); err != nil {
			return nil, fmt.Errorf("CC_SEED_FILE: файл %s недоступен: %w", cfg.SeedFile, err)
		}
	}

	if !cfg.UIEnabled && !cfg.APIEnabled {
		return nil, fmt.Errorf("CC_UI_ENABLED и CC_API_ENABLED: должен быть включён хотя бы один интерфейс")
	}

	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("CC_SHUTDOWN_TIMEOUT: значение должно быть положительным, получено %s", cfg.ShutdownTimeout)
	}

	return cfg, nil
}

// Usage возвращает справку по переменным окружения.
func Usage() string {
	var raw env
	text, err := cleanenv.GetDescription(&raw, nil)
	if err != nil {
		return err.Error()
	}
	return text
}

// SetupLogger настраивает глобальный slog-логгер на основе конфигурации.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLogLevel преобразует строку уровня логирования в slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("недопустимое значение %q, допустимые: debug, info, warn, error", s)
	}
}
