// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfrx/fluxa/internal/config"
	"github.com/devfrx/fluxa/internal/logger"
)

// newTestClient builds a client pointed at the test server.
func newTestClient(t *testing.T, serverURL string) Client {
	t.Helper()
	cfg := config.LMStudio{
		BaseURL:     serverURL,
		Timeout:     5 * time.Second,
		ModelName:   "qwen2.5-7b-instruct",
		Temperature: 0.7,
		MaxTokens:   128,
	}
	return NewClient(cfg, logger.Nop())
}

func TestCheckConnection_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.CheckConnection(context.Background()))
}

func TestCheckConnection_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	c := newTestClient(t, srv.URL)
	err := c.CheckConnection(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(modelListResponse{Data: []ModelInfo{
			{ID: "qwen2.5-7b-instruct", Object: "model", OwnedBy: "organization_owner"},
			{ID: "llava-v1.6", Object: "model", OwnedBy: "organization_owner"},
		}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	models, err := c.Models(context.Background())

	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "qwen2.5-7b-instruct", models[0].ID)
}

func TestChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "qwen2.5-7b-instruct", req.Model)
		assert.False(t, req.Stream)
		require.NotEmpty(t, req.Messages)
		assert.Equal(t, "hello", req.Messages[len(req.Messages)-1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "qwen2.5-7b-instruct",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "hi there"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 5, "completion_tokens": 3, "total_tokens": 8}
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}})

	require.NoError(t, err)
	assert.Equal(t, "hi there", got.Content)
	assert.Equal(t, "stop", got.FinishReason)
	assert.Equal(t, 8, got.Usage.TotalTokens)
}

func TestChat_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "model": "m", "choices": []}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestChat_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model not loaded"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestChatStream_AssemblesDeltas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		chunks := []string{"Hel", "lo ", "world"}
		for _, chunk := range chunks {
			fmt.Fprintf(w, "data: {\"model\":\"qwen2.5-7b-instruct\",\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", chunk)
		}
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{},\"finish_reason\":\"stop\"}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	var deltas []string
	got, err := c.ChatStream(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}}, func(delta string) {
		deltas = append(deltas, delta)
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello world", got.Content)
	assert.Equal(t, "stop", got.FinishReason)
	assert.Equal(t, []string{"Hel", "lo ", "world"}, deltas)
}

func TestChatStream_SkipsMalformedChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data: {not json}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"ok\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.ChatStream(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}}, nil)

	require.NoError(t, err)
	assert.Equal(t, "ok", got.Content)
}

func TestChatStream_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ChatStream(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 400")
}
