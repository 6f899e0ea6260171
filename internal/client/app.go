// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package client

import (
	"context"
	"fmt"
	"os"

	"github.com/devfrx/fluxa/internal/agent"
	"github.com/devfrx/fluxa/internal/config"
	"github.com/devfrx/fluxa/internal/llm"
	"github.com/devfrx/fluxa/internal/logger"
	"github.com/devfrx/fluxa/internal/service"
	"github.com/devfrx/fluxa/internal/store"
	"github.com/devfrx/fluxa/internal/tui"
	"github.com/devfrx/fluxa/migrations"
)

// App wires every subsystem together: configuration, logging, the SQLite
// memory store, the LLM client, the agent and the chat UI.
type App struct {
	cfg      *config.Config
	logger   *logger.Logger
	db       *store.DB
	services *service.Services
	client   llm.Client
	agent    *agent.Agent
	ui       *tui.TUI
}

// NewApp builds the full dependency graph from an already resolved config.
func NewApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, log)

	llmClient := llm.NewClient(cfg.LMStudio, log)
	a := agent.NewAgent(services.MemoryService, llmClient, cfg, log)

	ui, err := tui.New(a, services.MemoryService, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		logger:   log,
		db:       db,
		services: services,
		client:   llmClient,
		agent:    a,
		ui:       ui,
	}, nil
}

// Run checks the model server and enters the chat loop. An unreachable
// server is a warning, not a fatal error: the user may start LMStudio later
// and retry from inside the chat.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.client.CheckConnection(ctx); err != nil {
		a.logger.Warn().Err(err).Str("base_url", a.cfg.LMStudio.BaseURL).Msg("model server unreachable")
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	return a.ui.ChatLoop(ctx)
}

// Close releases the database connection.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Err(err).Msg("error closing database")
		}
	}
}
