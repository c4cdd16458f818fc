package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/nikolayk812/cartview/internal/config"
	"github.com/nikolayk812/cartview/internal/events"
	"github.com/nikolayk812/cartview/internal/migrations"
	"github.com/nikolayk812/cartview/internal/port"
	"github.com/nikolayk812/cartview/internal/repository"
	"github.com/nikolayk812/cartview/internal/server"
	"github.com/nikolayk812/cartview/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("cartd stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newRepository(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	publisher := events.NewNoop()
	if len(cfg.Kafka.Brokers) > 0 {
		logger.Info("init kafka publisher", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))

		kafkaPublisher, kafkaClient, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return err
		}
		defer kafkaClient.Close()

		publisher = kafkaPublisher
	}

	svc, err := service.NewCart(repo, publisher, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: server.API(svc, server.Options{
			GinMode:        cfg.HTTP.GinMode,
			DefaultOwnerID: cfg.HTTP.DefaultOwnerID,
			Logger:         logger,
		}),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", cfg.HTTP.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func newRepository(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (port.CartRepository, func(), error) {
	if cfg.URL == "" {
		logger.Warn("DATABASE_URL is empty, carts are kept in memory")
		return repository.NewMemory(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	if cfg.RunMigrations {
		logger.Info("applying migrations")

		db := stdlib.OpenDBFromPool(pool)
		err := migrations.Up(ctx, db)
		_ = db.Close()
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	repo, err := repository.NewCart(pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	return repo, pool.Close, nil
}
