package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ourbigday/bigday/internal/api"
	"github.com/ourbigday/bigday/internal/config"
	"github.com/ourbigday/bigday/internal/logging"
	"github.com/ourbigday/bigday/internal/session"
	"github.com/ourbigday/bigday/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bigday:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Logs go to a file: the TUI owns the terminal.
	closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	client := api.New(cfg.Server.BaseURL)
	store, err := session.NewStore(client)
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	ctx := context.Background()
	slog.Info("starting", "base_url", cfg.Server.BaseURL)

	app := tui.New(ctx, cfg, client, store)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
