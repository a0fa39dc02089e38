package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"filmorate/internal/config"
	"filmorate/internal/http/server"
	"filmorate/internal/logger"
	"filmorate/internal/metrics"
	"filmorate/internal/repository"
	"filmorate/internal/repository/inmemory"
	"filmorate/internal/repository/postgres"
	"filmorate/internal/services/films"
	"filmorate/internal/services/users"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, log *zerolog.Logger) error {
	storage, err := newStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()

	userService := users.NewServiceUsers(storage,
		users.WithFriendshipMode(users.FriendshipMode(cfg.FriendshipMode)),
	)
	filmService := films.NewServiceFilms(storage)

	srv, err := server.NewServer(log, *cfg, userService, filmService, storage, metrics.New())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return <-errCh
}

func newStorage(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (repository.Storage, error) {
	if cfg.UseInMemory() {
		log.Info().Msg("using in-memory storage")
		return inmemory.NewStorage(), nil
	}

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(cfg.DatabaseDSN); err != nil {
			return nil, err
		}
		log.Info().Msg("database migrations applied")
	}

	storage, err := postgres.NewStorage(ctx, cfg.DatabaseDSN, cfg.DBMinConns, cfg.DBMaxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info().
		Int("min_conns", cfg.DBMinConns).
		Int("max_conns", cfg.DBMaxConns).
		Msg("using postgres storage")
	return storage, nil
}
