// Package main is the stdio MCP server. It keeps state in a local SQLite file
// and needs no external services.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/senior-care-guide/internal/config"
	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/mcp"
	"github.com/senior-care-guide/internal/service"
	"github.com/senior-care-guide/internal/session"
	"github.com/senior-care-guide/internal/storage"
)

var version = "1.0.0"

func main() {
	if err := run(config.LoadLiteConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.LiteConfig) error {
	// stdout carries the protocol.
	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat, "stderr")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := storage.NewSQLiteStore(cfg.StatePath())
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close state store")
		}
	}()

	recommender, err := service.NewRecommendationService(logger, cfg.CacheMaxItems, nil)
	if err != nil {
		return fmt.Errorf("failed to create recommendation service: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sess := session.Open(ctx, store,
		session.WithLogger(logger),
		session.WithRecommender(recommender),
		session.WithDefaultLanguage(cfg.Language),
	)

	logger.WithField("data_dir", cfg.DataDir).Info("Starting senior care guide MCP server")

	server := mcp.NewServer(domain.MCPConfig{ServerName: "senior-care-guide", ServerVersion: version}, sess, recommender, logger)
	if err := server.Start(ctx); err != nil {
		return err
	}

	logger.Info("MCP server stopped")
	return nil
}
