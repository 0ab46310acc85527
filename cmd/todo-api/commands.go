package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/handler"
	"github.com/deppfellow/todo-api/internal/logger"
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/deppfellow/todo-api/internal/router"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 30 * time.Second
	migrateTimeout  = 2 * time.Minute
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo-api",
		Short: "HTTP API for managing todos stored in PostgreSQL",
		Long: `todo-api serves CRUD endpoints for the todo table.

CONFIGURATION:
  Every setting is read from TODO_* environment variables (a .env file in
  the working directory is loaded first). A double underscore separates
  nesting levels:

    TODO_PRIMARY__ENV                     local disables automatic migrations
    TODO_SERVER__PORT                     listen port (default: 5000)
    TODO_DATABASE__HOST                   PostgreSQL host (default: localhost)
    TODO_DATABASE__NAME                   database name (default: todo_database)
    TODO_OBSERVABILITY__NEW_RELIC__LICENSE_KEY   enables New Relic when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run migrations (outside local) and start the HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply the embedded database migrations and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context())
			},
		},
	)

	return root
}

// bootstrap loads configuration and builds the process logger. Callers own
// the returned LoggerService and must Shutdown it.
func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, zerolog.Logger{}, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, loggerService, log, nil
}

func runMigrate(ctx context.Context) error {
	cfg, loggerService, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Error().Err(err).Msg("failed to migrate database")
		return err
	}
	return nil
}

func runServe(ctx context.Context) error {
	cfg, loggerService, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	if cfg.Primary.Env != "local" {
		migrateCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
		err := database.Migrate(migrateCtx, &log, cfg)
		cancel()
		if err != nil {
			log.Error().Err(err).Msg("failed to migrate database")
			return err
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			_ = srv.Shutdown(context.Background())
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
