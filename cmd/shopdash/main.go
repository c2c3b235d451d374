package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	mongostore "github.com/shopdash/shopdash/engine/infra/mongo"
	"github.com/shopdash/shopdash/engine/infra/server"
	"github.com/shopdash/shopdash/pkg/config"
	"github.com/shopdash/shopdash/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "shopdash",
		Short:        "Dashboard backend for users, carts, and payments",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "log in JSON format")
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logLevel, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return fmt.Errorf("failed to get log-level flag: %w", err)
			}
			logJSON, err := cmd.Flags().GetBool("log-json")
			if err != nil {
				return fmt.Errorf("failed to get log-json flag: %w", err)
			}
			log := logger.SetupLogger(logLevel, logJSON)
			return runServe(cmd.Context(), log)
		},
	}
}

func runServe(ctx context.Context, log logger.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	ctx = logger.ContextWithLogger(ctx, log)

	store, err := mongostore.NewStore(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Warn("failed to close store", "error", err)
		}
	}()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// Logout revocation degrades to cookie clearing only; the server
		// still comes up.
		log.Warn("redis unavailable, token revocation disabled", "error", err)
		redisClient = nil
	}
	defer func() {
		if redisClient != nil {
			redisClient.Close()
		}
	}()

	return server.New(cfg, log, store, redisClient).Run(ctx)
}
