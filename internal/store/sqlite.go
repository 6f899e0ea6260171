// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/devfrx/fluxa/internal/config"
	"github.com/devfrx/fluxa/internal/logger"
)

// DB wraps the SQLite connection pool used by all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (and creates, if needed) the local SQLite database
// described by the database config group. Foreign keys are always on; WAL
// and the busy timeout follow the config.
func NewConnectSQLite(ctx context.Context, cfg config.Database, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn(cfg))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(cfg.MaxConnections)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", cfg.Path).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// dsn builds the go-sqlite3 connection string from the config group.
func dsn(cfg config.Database) string {
	params := []string{
		"_foreign_keys=on",
		fmt.Sprintf("_busy_timeout=%d", cfg.Timeout.Milliseconds()),
	}
	if cfg.EnableWAL {
		params = append(params, "_journal_mode=WAL")
	}
	return fmt.Sprintf("file:%s?%s", cfg.Path, strings.Join(params, "&"))
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
