package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gatherhub/server/internal/api"
	"github.com/gatherhub/server/internal/auth"
	"github.com/gatherhub/server/internal/config"
	"github.com/gatherhub/server/internal/domain/bookings"
	"github.com/gatherhub/server/internal/domain/events"
	"github.com/gatherhub/server/internal/domain/users"
	"github.com/gatherhub/server/internal/graph"
	"github.com/gatherhub/server/internal/storage/mongodb"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Server flags (override config/env)
	serverHost string
	serverPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GraphQL HTTP server",
	Long: `Start the HTTP server and begin accepting GraphQL requests.

The server connects to MongoDB before it listens; a failed connection
aborts startup. Shutdown is graceful on SIGINT/SIGTERM.

Examples:
  # Start with default configuration (from env vars)
  server serve

  # Start on a specific host and port
  server serve --host 127.0.0.1 --port 9090

  # Start with debug logging
  server serve --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host address (default: 0.0.0.0)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (default: 8000)")
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	logger := config.NewLogger(cfg.Logging)
	logger.Info().Msg("starting gatherhub server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	client, err := mongodb.Connect(ctx, cfg.Database.URL)
	cancel()
	if err != nil {
		logger.Error().Err(err).Msg("database connection failed")
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("database disconnect failed")
		}
	}()

	repo, err := mongodb.NewRepository(client, cfg.Database.Name)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = repo.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		logger.Error().Err(err).Msg("index setup failed")
		return err
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, "gatherhub")

	usersService := users.NewService(repo.Users())
	eventsService := events.NewService(repo.Events(), repo.Users())
	bookingsService := bookings.NewService(repo.Bookings(), repo.Events())

	resolver := graph.NewResolver(usersService, eventsService, bookingsService, tokens)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           api.NewRouter(cfg, logger, repo, client, tokens, schema),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	shutdown(server, logger)
	return nil
}

func shutdown(server *http.Server, logger zerolog.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
