// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/devfrx/fluxa/internal/config"
	"github.com/devfrx/fluxa/internal/logger"
)

var (
	// ErrServerUnavailable indicates the completion server cannot be reached.
	ErrServerUnavailable = errors.New("llm server unavailable")
	// ErrEmptyCompletion indicates the server answered without any choice.
	ErrEmptyCompletion = errors.New("empty completion")
)

// streamDataPrefix marks SSE payload lines in the streaming response.
const streamDataPrefix = "data:"

// streamDoneMarker terminates the SSE stream.
const streamDoneMarker = "[DONE]"

type restyClient struct {
	client *resty.Client
	cfg    config.LMStudio
	logger *logger.Logger
}

// NewClient builds a chat completion client from the lmstudio config group.
func NewClient(cfg config.LMStudio, log *logger.Logger) Client {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries)

	return &restyClient{client: cli, cfg: cfg, logger: log}
}

func (c *restyClient) CheckConnection(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get("/models")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: http %d", ErrServerUnavailable, resp.StatusCode())
	}
	return nil
}

func (c *restyClient) Models(ctx context.Context) ([]ModelInfo, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/models")
	if err != nil {
		return nil, fmt.Errorf("models request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list modelListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode models response: %w", err)
	}
	return list.Data, nil
}

func (c *restyClient) Chat(ctx context.Context, messages []ChatMessage) (Completion, error) {
	requestID := uuid.NewString()
	c.logPrompt(requestID, messages)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c.newRequest(messages, false)).
		Post("/chat/completions")
	if err != nil {
		return Completion{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Completion{}, err
	}

	var decoded chatCompletionResponse
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		return Completion{}, fmt.Errorf("decode chat response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return Completion{}, ErrEmptyCompletion
	}

	choice := decoded.Choices[0]
	completion := Completion{
		Content:      choice.Message.Content,
		Model:        decoded.Model,
		FinishReason: choice.FinishReason,
		Usage:        decoded.Usage,
	}
	c.logger.LLMInteraction("response", completion.Content, map[string]any{
		"request_id": requestID,
		"model":      completion.Model,
		"tokens":     completion.Usage.TotalTokens,
	})
	return completion, nil
}

// ChatStream reads the completion as server-sent events. Each "data:" line
// carries one JSON chunk; the stream ends with "[DONE]".
func (c *restyClient) ChatStream(ctx context.Context, messages []ChatMessage, onDelta func(delta string)) (Completion, error) {
	requestID := uuid.NewString()
	c.logPrompt(requestID, messages)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "text/event-stream").
		SetBody(c.newRequest(messages, true)).
		SetDoNotParseResponse(true).
		Post("/chat/completions")
	if err != nil {
		return Completion{}, fmt.Errorf("chat stream request: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() >= http.StatusBadRequest {
		return Completion{}, fmt.Errorf("http %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	var content strings.Builder
	completion := Completion{}

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return Completion{}, err
		}

		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, streamDataPrefix) {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, streamDataPrefix))
		if payload == streamDoneMarker {
			break
		}

		var chunk chatCompletionChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			c.logger.Warn().Str("request_id", requestID).Err(err).Msg("skipping malformed stream chunk")
			continue
		}
		if chunk.Model != "" {
			completion.Model = chunk.Model
		}
		for _, choice := range chunk.Choices {
			if choice.Delta.Content != "" {
				content.WriteString(choice.Delta.Content)
				if onDelta != nil {
					onDelta(choice.Delta.Content)
				}
			}
			if choice.FinishReason != nil {
				completion.FinishReason = *choice.FinishReason
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Completion{}, fmt.Errorf("read chat stream: %w", err)
	}

	completion.Content = content.String()
	c.logger.LLMInteraction("response", completion.Content, map[string]any{
		"request_id": requestID,
		"model":      completion.Model,
		"streamed":   true,
	})
	return completion, nil
}

func (c *restyClient) newRequest(messages []ChatMessage, stream bool) chatCompletionRequest {
	return chatCompletionRequest{
		Model:       c.cfg.ModelName,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Stream:      stream,
	}
}

func (c *restyClient) logPrompt(requestID string, messages []ChatMessage) {
	last := ""
	if len(messages) > 0 {
		last = messages[len(messages)-1].Content
	}
	c.logger.LLMInteraction("request", last, map[string]any{
		"request_id": requestID,
		"model":      c.cfg.ModelName,
		"messages":   len(messages),
	})
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
