// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package agent

import (
	"context"
	"fmt"

	"github.com/devfrx/fluxa/internal/config"
	"github.com/devfrx/fluxa/internal/llm"
	"github.com/devfrx/fluxa/internal/logger"
	"github.com/devfrx/fluxa/internal/service"
	"github.com/devfrx/fluxa/models"
)

// historyLimit caps how many stored messages are replayed into the prompt.
const historyLimit = 20

// Agent turns user input into persisted, model-generated replies. It owns
// the prompt assembly: system prompt first, then the recent conversation
// history, then the new input.
type Agent struct {
	memory service.MemoryService
	client llm.Client
	cfg    *config.Config
	logger *logger.Logger
}

func NewAgent(memory service.MemoryService, client llm.Client, cfg *config.Config, log *logger.Logger) *Agent {
	return &Agent{
		memory: memory,
		client: client,
		cfg:    cfg,
		logger: log,
	}
}

// Respond saves the user's input, asks the model for a reply and persists it.
// When streaming is enabled and onDelta is non-nil, fragments are delivered
// through onDelta as they arrive; the returned message always carries the
// complete reply.
func (a *Agent) Respond(ctx context.Context, conversationID int64, input string, onDelta func(delta string)) (models.Message, error) {
	if _, err := a.memory.AddMessage(ctx, models.Message{
		ConversationID: conversationID,
		Role:           models.RoleUser,
		Content:        input,
	}); err != nil {
		return models.Message{}, fmt.Errorf("save user message: %w", err)
	}

	history, err := a.memory.History(ctx, conversationID, historyLimit)
	if err != nil {
		return models.Message{}, fmt.Errorf("load history: %w", err)
	}
	prompt := a.buildPrompt(history)

	var completion llm.Completion
	if a.cfg.LMStudio.Stream && onDelta != nil {
		completion, err = a.client.ChatStream(ctx, prompt, onDelta)
	} else {
		completion, err = a.client.Chat(ctx, prompt)
	}
	if err != nil {
		return models.Message{}, fmt.Errorf("chat completion: %w", err)
	}

	reply, err := a.memory.AddMessage(ctx, models.Message{
		ConversationID: conversationID,
		Role:           models.RoleAssistant,
		Content:        completion.Content,
		Tokens:         completion.Usage.CompletionTokens,
		Model:          completion.Model,
	})
	if err != nil {
		return models.Message{}, fmt.Errorf("save assistant message: %w", err)
	}

	a.logger.Debug().
		Int64("conversation_id", conversationID).
		Str("model", completion.Model).
		Str("finish_reason", completion.FinishReason).
		Msg("assistant reply persisted")
	return reply, nil
}

// buildPrompt converts stored history into the wire format, prefixed by the
// system prompt. The history already includes the just-saved user input.
func (a *Agent) buildPrompt(history []models.Message) []llm.ChatMessage {
	prompt := make([]llm.ChatMessage, 0, len(history)+1)
	prompt = append(prompt, llm.ChatMessage{Role: string(models.RoleSystem), Content: a.systemPrompt()})
	for _, msg := range history {
		if msg.Role == models.RoleSystem {
			continue
		}
		prompt = append(prompt, llm.ChatMessage{Role: string(msg.Role), Content: msg.Content})
	}
	return prompt
}

func (a *Agent) systemPrompt() string {
	return fmt.Sprintf(
		"You are %s, a helpful personal assistant running locally on the user's machine. "+
			"Be concise and direct. Answer in the language the user writes in.",
		a.cfg.App.Name,
	)
}
