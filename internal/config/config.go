// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package config

import (
	"errors"
	"time"
)

// Config is the typed view over a validated [Resolved], grouped by section.
// It is the object the rest of the application consumes.
type Config struct {
	App      App
	LMStudio LMStudio
	Vision   Vision
	Database Database
	Tools    Tools
	Logging  Logging

	resolved *Resolved
}

// App holds application-level settings.
type App struct {
	// Name is the assistant's display name, used in the system prompt and
	// the chat UI.
	Name string

	// Debug enables verbose diagnostics at startup.
	Debug bool
}

// LMStudio holds connection settings for the LMStudio-compatible LLM server.
type LMStudio struct {
	// BaseURL is the OpenAI-compatible API root (e.g. "http://localhost:1234/v1").
	BaseURL string

	// Timeout bounds a single HTTP request.
	Timeout time.Duration

	// MaxRetries is the number of retry attempts on a failed request.
	MaxRetries int

	// ModelName selects the model; empty uses whatever is active in LMStudio.
	ModelName string

	// Temperature steers generation randomness (0.0-2.0).
	Temperature float64

	// MaxTokens caps the generated completion length.
	MaxTokens int

	// Stream enables server-sent-event streaming of replies.
	Stream bool
}

// Vision holds settings for image understanding capabilities.
type Vision struct {
	Enabled          bool
	ModelName        string
	MaxImageSizeMB   int
	SupportedFormats []string
}

// Database holds settings for the local SQLite memory store.
type Database struct {
	// Path is the database file location; parent directories are created on
	// demand.
	Path string

	// EnableWAL switches the journal to write-ahead logging.
	EnableWAL bool

	// Timeout bounds a single database operation (busy timeout).
	Timeout time.Duration

	// MaxConnections caps the connection pool.
	MaxConnections int
}

// Tools holds settings for external tool execution.
type Tools struct {
	Enabled       bool
	MaxIterations int
	Timeout       time.Duration

	// AllowedTools whitelists tool names; empty allows all.
	AllowedTools []string
}

// Logging holds settings consumed by the logging subsystem at startup.
type Logging struct {
	Level    string // debug, info, warn, error
	Format   string // console or json
	FilePath string // empty = console only
}

// Resolved exposes the underlying immutable mapping for dotted-path lookups.
func (c *Config) Resolved() *Resolved { return c.resolved }

// DefaultSchema declares every fluxa configuration field with its defaults
// and constraints.
func DefaultSchema() Schema {
	return Schema{
		{Key: "app.name", Kind: KindString, Default: StringValue("Fluxa"), NonEmpty: true},
		{Key: "app.debug", Kind: KindBool, Default: BoolValue(false)},

		{Key: "lmstudio.base_url", Kind: KindString, Default: StringValue("http://localhost:1234/v1"), NonEmpty: true},
		{Key: "lmstudio.timeout", Kind: KindInt, Default: IntValue(30), Range: &Range{Min: 1, Max: 100}},
		{Key: "lmstudio.max_retries", Kind: KindInt, Default: IntValue(3), Range: &Range{Min: 0, Max: 10}},
		{Key: "lmstudio.model_name", Kind: KindString, Default: StringValue("")},
		{Key: "lmstudio.temperature", Kind: KindFloat, Default: FloatValue(0.7), Range: &Range{Min: 0, Max: 2}},
		{Key: "lmstudio.max_tokens", Kind: KindInt, Default: IntValue(2048), Range: &Range{Min: 1, Max: 16384}},
		{Key: "lmstudio.stream", Kind: KindBool, Default: BoolValue(true)},

		{Key: "vision.enabled", Kind: KindBool, Default: BoolValue(true)},
		{Key: "vision.model_name", Kind: KindString, Default: StringValue("")},
		{Key: "vision.max_image_size", Kind: KindInt, Default: IntValue(10), Range: &Range{Min: 1, Max: 100}},
		{Key: "vision.supported_formats", Kind: KindStrings, Default: StringsValue([]string{"jpg", "png"})},

		{Key: "database.path", Kind: KindString, Default: StringValue("./data/fluxa.db"), NonEmpty: true},
		{Key: "database.enable_wal", Kind: KindBool, Default: BoolValue(true)},
		{Key: "database.timeout", Kind: KindFloat, Default: FloatValue(5), Range: &Range{Min: 1, Max: 30}},
		{Key: "database.max_connections", Kind: KindInt, Default: IntValue(5), Range: &Range{Min: 1, Max: 20}},

		{Key: "tools.enabled", Kind: KindBool, Default: BoolValue(true)},
		{Key: "tools.max_iterations", Kind: KindInt, Default: IntValue(5), Range: &Range{Min: 1, Max: 20}},
		{Key: "tools.timeout", Kind: KindInt, Default: IntValue(15), Range: &Range{Min: 1, Max: 60}},
		{Key: "tools.allowed_tools", Kind: KindStrings, Default: StringsValue(nil)},

		{Key: "logging.level", Kind: KindString, Default: StringValue("info"), OneOf: []string{"debug", "info", "warn", "error"}},
		{Key: "logging.format", Kind: KindString, Default: StringValue("console"), OneOf: []string{"console", "json"}},
		{Key: "logging.file_path", Kind: KindString, Default: StringValue("")},
	}
}

// newConfig runs the loader and binds the resolved mapping into the typed
// groups.
func newConfig(loader *Loader) (*Config, error) {
	resolved, err := loader.Load()
	if err != nil {
		return nil, err
	}

	b := binder{resolved: resolved}
	cfg := &Config{
		App: App{
			Name:  b.str("app.name"),
			Debug: b.boolean("app.debug"),
		},
		LMStudio: LMStudio{
			BaseURL:     b.str("lmstudio.base_url"),
			Timeout:     time.Duration(b.integer("lmstudio.timeout")) * time.Second,
			MaxRetries:  int(b.integer("lmstudio.max_retries")),
			ModelName:   b.str("lmstudio.model_name"),
			Temperature: b.float("lmstudio.temperature"),
			MaxTokens:   int(b.integer("lmstudio.max_tokens")),
			Stream:      b.boolean("lmstudio.stream"),
		},
		Vision: Vision{
			Enabled:          b.boolean("vision.enabled"),
			ModelName:        b.str("vision.model_name"),
			MaxImageSizeMB:   int(b.integer("vision.max_image_size")),
			SupportedFormats: b.strings("vision.supported_formats"),
		},
		Database: Database{
			Path:           b.str("database.path"),
			EnableWAL:      b.boolean("database.enable_wal"),
			Timeout:        time.Duration(b.float("database.timeout") * float64(time.Second)),
			MaxConnections: int(b.integer("database.max_connections")),
		},
		Tools: Tools{
			Enabled:       b.boolean("tools.enabled"),
			MaxIterations: int(b.integer("tools.max_iterations")),
			Timeout:       time.Duration(b.integer("tools.timeout")) * time.Second,
			AllowedTools:  b.strings("tools.allowed_tools"),
		},
		Logging: Logging{
			Level:    b.str("logging.level"),
			Format:   b.str("logging.format"),
			FilePath: b.str("logging.file_path"),
		},
		resolved: resolved,
	}
	if b.err != nil {
		return nil, b.err
	}
	return cfg, nil
}

// binder accumulates the first accessor error while reading many keys, so
// the binding code stays flat. Keys not declared in the schema are left at
// their zero value: the typed groups cover the default schema, and a custom
// schema (tests) still gets the full Resolved view.
type binder struct {
	resolved *Resolved
	err      error
}

func (b *binder) record(err error) {
	if err == nil || errors.Is(err, ErrUnknownKey) {
		return
	}
	if b.err == nil {
		b.err = err
	}
}

func (b *binder) str(key string) string {
	v, err := b.resolved.String(key)
	b.record(err)
	return v
}

func (b *binder) integer(key string) int64 {
	v, err := b.resolved.Int(key)
	b.record(err)
	return v
}

func (b *binder) float(key string) float64 {
	v, err := b.resolved.Float(key)
	b.record(err)
	return v
}

func (b *binder) boolean(key string) bool {
	v, err := b.resolved.Bool(key)
	b.record(err)
	return v
}

func (b *binder) strings(key string) []string {
	v, err := b.resolved.Strings(key)
	b.record(err)
	return v
}
