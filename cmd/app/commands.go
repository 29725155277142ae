package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ManhwaCatalog/internal/config"
	"ManhwaCatalog/internal/views"
	"ManhwaCatalog/pkg/database/postgres"
	"ManhwaCatalog/pkg/log"
	"ManhwaCatalog/pkg/markdown"
	"ManhwaCatalog/pkg/redis"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "app",
	Short:        "Manhwa catalog server",
	Long:         `Serves the manhwa catalog, curated lists and blog, and manages its database.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the catalog tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.NewLogger()

		db, err := postgres.New()
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := postgres.Migrate(ctx, db); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}

		logger.Info("Schema is up to date")
		return nil
	},
}

var sitemapOut string
var sitemapRefresh bool

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write the sitemap XML to stdout or a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := newServer()
		if err != nil {
			return err
		}
		defer server.Shutdown(context.Background())
		server.RegisterHandler()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if sitemapRefresh {
			if err := server.Sitemap().Invalidate(ctx); err != nil {
				return fmt.Errorf("failed to drop cached sitemap: %w", err)
			}
		}

		doc, err := server.Sitemap().Generate(ctx)
		if err != nil {
			return err
		}

		if sitemapOut == "" {
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		}
		return os.WriteFile(sitemapOut, doc, 0o644)
	},
}

func init() {
	sitemapCmd.Flags().StringVarP(&sitemapOut, "out", "o", "", "write to this file instead of stdout")
	sitemapCmd.Flags().BoolVar(&sitemapRefresh, "refresh", false, "ignore the cached copy")

	rootCmd.AddCommand(serveCmd, migrateCmd, sitemapCmd)
}

func newServer(extra ...config.ServerOption) (*config.Server, error) {
	logger := log.NewLogger()

	options := []config.ServerOption{
		config.WithFiber(config.NewFiber(logger, views.New())),
		config.WithLogger(logger),
		config.WithValidator(config.NewValidator()),
		config.WithDatabase(),
		config.WithCache(redis.New(logger)),
		config.WithMarkdownRenderer(markdown.New()),
		config.WithMiddleware(),
	}

	return config.NewServer(append(options, extra...)...)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := log.NewLogger()

	server, err := newServer(config.WithListExtractor())
	if err != nil {
		return err
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	logger.Info("Server started successfully")

	select {
	case err := <-errChan:
		return fmt.Errorf("error starting server: %w", err)
	case <-sigChan:
	}

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}
