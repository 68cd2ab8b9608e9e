package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/mallkit/cart-service/internal/api"
	"github.com/mallkit/cart-service/pkg/db"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "cart-service").Logger()

	cfg, err := db.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}
	defer conn.Close()

	if err := db.RunMigrations(conn, cfg.MigrationsDir); err != nil {
		logger.Fatal().Err(err).Msg("run migrations")
	}

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      api.NewRouter(conn, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("server shutdown")
		}
		close(idleConnsClosed)
	}()

	logger.Info().Str("addr", cfg.ServerAddr).Msg("starting cart-service")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("listen")
	}

	<-idleConnsClosed
	logger.Info().Msg("server stopped")
}
