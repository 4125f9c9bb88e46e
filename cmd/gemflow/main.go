// cmd/gemflow/main.go
//
// This is the entry point for the gemflow CLI.
// When you run `gemflow` from any directory, this is what executes.
//
// Flow:
// 1. Initialize the .gemflow folder (config, state, logs)
// 2. Wire the journey store, orchestrator, model client and service
// 3. Launch the chat TUI

package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/caiomarinho/gemflow/internal/config"
	"github.com/caiomarinho/gemflow/internal/gem"
	"github.com/caiomarinho/gemflow/internal/journey"
	"github.com/caiomarinho/gemflow/internal/llm"
	"github.com/caiomarinho/gemflow/internal/logging"
	"github.com/caiomarinho/gemflow/internal/orchestrator"
	"github.com/caiomarinho/gemflow/internal/service"
	"github.com/caiomarinho/gemflow/internal/tui"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitGemflowDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .gemflow directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := newJourneyStore(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journey store: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	orc, err := orchestrator.New(ctx, gem.Catalog(), store, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journey: %v\n", err)
		os.Exit(1)
	}

	model := llm.NewOllamaClient(llm.OllamaConfig{
		BaseURL: cfg.Project.Model.BaseURL,
		Model:   cfg.Project.Model.Name,
		Timeout: cfg.Project.Model.Timeout(),
	}, log)

	svc := service.New(orc, model, log)
	log.Info("session opened",
		zap.String("model", model.Model()),
		zap.String("backend", cfg.Project.Journey.Backend))

	p := tea.NewProgram(
		tui.NewApp(svc, log),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// newJourneyStore selects the journey state backend from config.
func newJourneyStore(cfg *config.Config, log *zap.Logger) (journey.Store, error) {
	switch cfg.Project.Journey.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Project.Journey.Redis.Addr})
		return journey.NewRedisStore(client, cfg.Project.Journey.Redis.Prefix), nil
	default:
		return journey.NewFileStore(cfg.JourneyStatePath(), log), nil
	}
}
