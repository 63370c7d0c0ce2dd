package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/noorjahan04/live-polling-system/app"
	"github.com/noorjahan04/live-polling-system/config"
	"github.com/noorjahan04/live-polling-system/lib/slogcustom"
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// Load environment variables file, if running in development
	if os.Getenv("ENV") != "production" && os.Getenv("ENV") != "test" {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
	}

	cfg := config.LoadConfig()

	logger := slog.New(slogcustom.NewHandler(os.Stdout, parseLevel(cfg.LogLevel)))
	slog.SetDefault(logger)

	manager := app.NewManager(logger)
	router := manager.Router(cfg, logger)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	logger.Info("poll server is up", "addr", addr, "frontend", cfg.FrontendURL)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
