// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/devfrx/fluxa/internal/client"
	"github.com/devfrx/fluxa/internal/config"
	"github.com/devfrx/fluxa/internal/logger"
	"github.com/devfrx/fluxa/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	command := "chat"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "version":
		printBuildInfo()
	case "chat":
		runChat()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\nusage: fluxa [chat|version]\n", command)
		os.Exit(2)
	}
}

func runChat() {
	cfg, err := config.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error:\n%v\n", err)
		os.Exit(1)
	}

	log, err := logger.Setup("fluxa", cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.FilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("app run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
