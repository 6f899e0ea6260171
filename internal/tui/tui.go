// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devfrx/fluxa/internal/agent"
	"github.com/devfrx/fluxa/internal/config"
	"github.com/devfrx/fluxa/internal/logger"
	"github.com/devfrx/fluxa/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	agent  *agent.Agent
	memory service.MemoryService
	cfg    *config.Config
	logger *logger.Logger
}

func New(a *agent.Agent, memory service.MemoryService, cfg *config.Config, log *logger.Logger) (*TUI, error) {
	return &TUI{agent: a, memory: memory, cfg: cfg, logger: log}, nil
}

// ChatLoop opens a fresh conversation and runs the chat screen until the
// user quits.
func (t *TUI) ChatLoop(ctx context.Context) error {
	conv, err := t.memory.StartConversation(ctx, "")
	if err != nil {
		return err
	}

	model := newChatModel(ctx, t.agent, conv.ID, t.cfg)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(chatModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Int64("conversation_id", conv.ID).Msg("chat session ended")
	}
	return nil
}
