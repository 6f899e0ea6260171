// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/devfrx/fluxa/internal/logger"
)

// EnvPrefix is the prefix every fluxa environment variable carries.
const EnvPrefix = "FLUXA_"

// bootstrapEnv holds the variables consulted before the pipeline runs. They
// steer source discovery and are excluded from the regular environment scan.
type bootstrapEnv struct {
	// ConfigFile is an explicit config file path (FLUXA_CONFIG).
	ConfigFile string `env:"CONFIG"`
}

// Loader runs the resolution pipeline: source readers, merge, validation.
// A Loader is stateless; every Load call re-reads the sources.
type Loader struct {
	schema   Schema
	prefix   string
	filePath string
	environ  func() []string
	log      *logger.Logger
}

// Option customizes a Loader.
type Option func(*Loader)

// WithFile sets an explicit config file path, bypassing discovery.
func WithFile(path string) Option {
	return func(l *Loader) { l.filePath = path }
}

// WithPrefix overrides the environment variable prefix.
func WithPrefix(prefix string) Option {
	return func(l *Loader) { l.prefix = prefix }
}

// WithLogger injects the diagnostics logger. The loader only emits debug
// records through it and never configures the logging subsystem.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// WithEnviron replaces the process environment, for tests that need an
// isolated variable set.
func WithEnviron(environ []string) Option {
	return func(l *Loader) { l.environ = func() []string { return environ } }
}

// NewLoader builds a Loader over the given schema with the fluxa defaults:
// FLUXA_ prefix, process environment, no-op logger.
func NewLoader(schema Schema, opts ...Option) *Loader {
	l := &Loader{
		schema:  schema,
		prefix:  EnvPrefix,
		environ: os.Environ,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load runs the full pipeline and returns the immutable resolved
// configuration, or the first structural failure (*ParseError) or the
// aggregated *ValidationError.
func (l *Loader) Load() (*Resolved, error) {
	defaults := l.schema.Defaults()

	explicit := l.filePath
	if explicit == "" {
		boot, err := l.bootstrap()
		if err != nil {
			return nil, fmt.Errorf("error reading bootstrap environment: %w", err)
		}
		explicit = boot.ConfigFile
	}

	path := resolveFilePath(explicit)
	fileRaw, err := readFile(path)
	if err != nil {
		return nil, err
	}

	envRaw := readEnv(l.prefix, l.environ(), "CONFIG")

	l.log.Debug().
		Str("file", path).
		Int("file_keys", countLeaves(fileRaw)).
		Int("env_keys", countLeaves(envRaw)).
		Msg("consulted configuration sources")

	combined, err := mergeSources(defaults, fileRaw, envRaw)
	if err != nil {
		return nil, err
	}

	values, verr := validate(combined, l.schema)
	if verr != nil {
		return nil, verr
	}

	l.logPrecedence(defaults, fileRaw, envRaw)

	return &Resolved{values: values}, nil
}

func (l *Loader) bootstrap() (bootstrapEnv, error) {
	return env.ParseAsWithOptions[bootstrapEnv](env.Options{
		Prefix:      l.prefix,
		Environment: env.ToMap(l.environ()),
	})
}

// logPrecedence emits one debug record per key that was present in more than
// one source, naming the winner.
func (l *Loader) logPrecedence(defaults, fileRaw, envRaw map[string]any) {
	fromDefaults := make(map[string]any)
	flatten("", defaults, fromDefaults)
	fromFile := make(map[string]any)
	flatten("", fileRaw, fromFile)
	fromEnv := make(map[string]any)
	flatten("", envRaw, fromEnv)

	for key := range fromEnv {
		if _, ok := fromFile[key]; ok {
			l.log.Debug().Str("key", key).Stringer("winner", SourceEnv).Msg("precedence override")
			continue
		}
		if _, ok := fromDefaults[key]; ok {
			l.log.Debug().Str("key", key).Stringer("winner", SourceEnv).Msg("precedence override")
		}
	}
	for key := range fromFile {
		if _, inEnv := fromEnv[key]; inEnv {
			continue
		}
		if _, ok := fromDefaults[key]; ok {
			l.log.Debug().Str("key", key).Stringer("winner", SourceFile).Msg("precedence override")
		}
	}
}

func countLeaves(m map[string]any) int {
	out := make(map[string]any)
	flatten("", m, out)
	return len(out)
}
