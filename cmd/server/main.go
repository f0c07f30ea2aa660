package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/senior-care-guide/internal/api"
	"github.com/senior-care-guide/internal/config"
	"github.com/senior-care-guide/internal/i18n"
	"github.com/senior-care-guide/internal/metrics"
	"github.com/senior-care-guide/internal/service"
	"github.com/senior-care-guide/internal/session"
	"github.com/senior-care-guide/internal/storage"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Serve the senior care guide JSON API",
		Version:       api.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configFile)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "path to a config file (yaml, json or toml)")

	return cmd
}

func run(configFile string) error {
	// Load configuration
	configManager, err := config.NewManager(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cfg := configManager.GetConfig()

	logger, err := config.NewLogger(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := storage.Open(ctx, cfg.Storage, cfg.Breaker, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	collector := metrics.NewCollector("senior_care_guide")

	maxItems := 0
	if cfg.Cache.Enabled {
		maxItems = cfg.Cache.MaxItems
	}
	recommender, err := service.NewRecommendationService(logger, maxItems, collector)
	if err != nil {
		return fmt.Errorf("failed to create recommendation service: %w", err)
	}

	sess := session.Open(ctx, store,
		session.WithLogger(logger),
		session.WithRecommender(recommender),
		session.WithMetrics(collector),
		session.WithDefaultLanguage(i18n.LanguageOrDefault(cfg.Server.DefaultLanguage)),
	)

	logger.WithFields(logrus.Fields{
		"host":    cfg.Server.Host,
		"port":    cfg.Server.Port,
		"storage": cfg.Storage.Backend,
	}).Info("Starting senior care guide API")

	server := api.NewServer(configManager, sess, recommender, collector, logger)
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
