package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env            string
	LogLevel       slog.Level
	CharsetDSN     string
	ServeAddr      string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment. Malformed numeric or
// level values fall back to their defaults with a warning.
func Load() Config {
	return Config{
		Env:            getEnv("ENV", "development"),
		LogLevel:       getLevel("LOG_LEVEL", slog.LevelInfo),
		CharsetDSN:     getEnv("CHARSET_DSN", ""),
		ServeAddr:      getEnv("SERVE_ADDR", "127.0.0.1:8080"),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer", "key", key, "value", v)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("ignoring invalid number", "key", key, "value", v)
		return fallback
	}
	return f
}

func getLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	level, err := ParseLevel(v)
	if err != nil {
		slog.Warn("ignoring invalid log level", "key", key, "value", v)
		return fallback
	}
	return level
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parsing log level %q: %w", s, err)
	}
	return level, nil
}
