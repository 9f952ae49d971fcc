package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/example/calendar-resolver/internal/application"
	"github.com/example/calendar-resolver/internal/config"
	"github.com/example/calendar-resolver/internal/logging"
	"github.com/example/calendar-resolver/internal/narrator"
	"github.com/example/calendar-resolver/internal/persistence/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := logging.NewLogger(os.Stderr, slog.LevelInfo)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := store.Migrate(context.Background()); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	explain := buildNarrator(cfg, logger)

	service := application.NewEventServiceWithLogger(
		newEventRepositoryAdapter(store),
		explain,
		cfg.SearchDays,
		uuid.NewString,
		time.Now,
		logger,
	)

	return newApp(service).Execute()
}

func buildNarrator(cfg config.Config, logger *slog.Logger) narrator.Narrator {
	if !cfg.NarratorEnabled() {
		return narrator.Noop{}
	}
	llm, err := narrator.NewLLM(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		logger.Warn("narrator disabled", "error", err)
		return narrator.Noop{}
	}
	return llm
}
