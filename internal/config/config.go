package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	HTTPAddr       string
	LogLevel       string
	RequestTimeout time.Duration
	Gemini         GeminiConfig
}

type GeminiConfig struct {
	APIKey string
}

func Load() (Config, error) {
	var cfg Config

	cfg.HTTPAddr = ":" + getEnv("PORT", "3000")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// HTTP_CLIENT_TIMEOUT=0 отключает таймаут исходящих запросов.
	reqTimeout, err := parseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_CLIENT_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = reqTimeout

	// Пустой ключ не ошибка конфигурации: запрос к Gemini упадёт на их стороне.
	cfg.Gemini = GeminiConfig{
		APIKey: getEnv("GEMINI_API_KEY", ""),
	}

	return cfg, nil
}

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	return time.ParseDuration(value)
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}
