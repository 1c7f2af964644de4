package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen/internal/config"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
