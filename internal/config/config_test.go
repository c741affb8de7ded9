package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setEnvs устанавливает переменные окружения на время теста.
func setEnvs(t *testing.T, envs map[string]string) {
	t.Helper()
	for k, v := range envs {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, ожидается 8080", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, ожидается Info", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, ожидается json", cfg.LogFormat)
	}
	if cfg.SeedFile != "" {
		t.Errorf("SeedFile = %q, ожидается пустая строка", cfg.SeedFile)
	}
	if cfg.DefaultLanguage != "ru" {
		t.Errorf("DefaultLanguage = %q, ожидается ru", cfg.DefaultLanguage)
	}
	if !cfg.UIEnabled || !cfg.APIEnabled {
		t.Errorf("UIEnabled=%v APIEnabled=%v, ожидается true/true", cfg.UIEnabled, cfg.APIEnabled)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, ожидается 5s", cfg.ShutdownTimeout)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(seed, []byte("actingUser: {id: me, role: admin}\n"), 0o600); err != nil {
		t.Fatalf("запись seed-файла: %v", err)
	}

	setEnvs(t, map[string]string{
		"CC_PORT":             "9090",
		"CC_LOG_LEVEL":        "debug",
		"CC_LOG_FORMAT":       "text",
		"CC_SEED_FILE":        seed,
		"CC_DEFAULT_LANGUAGE": "EN",
		"CC_API_ENABLED":      "false",
		"CC_SHUTDOWN_TIMEOUT": "10s",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, ожидается 9090", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, ожидается Debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, ожидается text", cfg.LogFormat)
	}
	if cfg.SeedFile != seed {
		t.Errorf("SeedFile = %q, ожидается %q", cfg.SeedFile, seed)
	}
	if cfg.DefaultLanguage != "en" {
		t.Errorf("DefaultLanguage = %q, ожидается en", cfg.DefaultLanguage)
	}
	if cfg.APIEnabled {
		t.Error("APIEnabled = true, ожидается false")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, ожидается 10s", cfg.ShutdownTimeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		envs map[string]string
	}{
		{"порт ниже диапазона", map[string]string{"CC_PORT": "80"}},
		{"порт выше диапазона", map[string]string{"CC_PORT": "70000"}},
		{"порт не число", map[string]string{"CC_PORT": "abc"}},
		{"уровень логирования", map[string]string{"CC_LOG_LEVEL": "verbose"}},
		{"формат логов", map[string]string{"CC_LOG_FORMAT": "xml"}},
		{"язык", map[string]string{"CC_DEFAULT_LANGUAGE": "de"}},
		{"seed-файл не существует", map[string]string{"CC_SEED_FILE": "/nonexistent/seed.yaml"}},
		{"оба интерфейса выключены", map[string]string{"CC_UI_ENABLED": "false", "CC_API_ENABLED": "false"}},
		{"некорректная длительность", map[string]string{"CC_SHUTDOWN_TIMEOUT": "soon"}},
		{"нулевой таймаут", map[string]string{"CC_SHUTDOWN_TIMEOUT": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvs(t, tt.envs)

			_, err := Load()
			if err == nil {
				t.Errorf("Load() не вернул ошибку при %v", tt.envs)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	text := Usage()
	for _, key := range []string{"CC_PORT", "CC_SEED_FILE", "CC_SHUTDOWN_TIMEOUT"} {
		if !strings.Contains(text, key) {
			t.Errorf("Usage() не содержит %s", key)
		}
	}
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name   string
		format string
	}{
		{"json", "json"},
		{"text", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				LogLevel:  slog.LevelInfo,
				LogFormat: tt.format,
			}
			logger := SetupLogger(cfg)
			if logger == nil {
				t.Error("SetupLogger() вернул nil")
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLogLevel(%q) ошибка = %v, хотели ошибку: %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, хотели %v", tt.input, got, tt.want)
			}
		})
	}
}
