package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fundmate/fundmate/api"
	"github.com/fundmate/fundmate/config"
	"github.com/fundmate/fundmate/payment"
	"github.com/fundmate/fundmate/payment/auth"
	"github.com/fundmate/fundmate/payment/history"
	"github.com/fundmate/fundmate/payment/history/memory"
	"github.com/fundmate/fundmate/payment/history/postgres"
	"github.com/fundmate/fundmate/payment/history/sqlite"
	"github.com/fundmate/fundmate/payment/model"
	"github.com/fundmate/fundmate/payment/notify"
	"github.com/fundmate/fundmate/payment/notify/kafka"
	"github.com/fundmate/fundmate/payment/pricefeed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	store, cleanup, err := newHistoryStore(ctx, cfg)
	if err != nil {
		slog.Error("init history store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	tracker := pricefeed.NewTracker(model.DefaultTokens(), cfg.PriceTickInterval, nil)
	tracker.Start()
	defer tracker.Stop()

	hub := notify.NewHub(0)
	sink := notify.Sink(hub)
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer publisher.Close()
		sink = notify.Fanout{hub, publisher}
		slog.Info("kafka publisher enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	engine := payment.NewEngine(
		payment.Config{
			SuccessRate:       cfg.SuccessRate,
			SettlementLatency: cfg.SettlementLatency,
			AuthTimeout:       cfg.AuthTimeout,
		},
		payment.Deps{
			// The demo server has no device biometrics; the gate approves
			// every prompt, like the original mock wallet connect.
			Gate:  auth.StaticGate{Approve: true},
			Feed:  tracker,
			Sink:  sink,
			Store: store,
		},
	)

	// Stand-in for the presentation layer's toast notifications.
	go func() {
		for event := range hub.Events() {
			slog.Info("payment event", "kind", event.Kind, "request_id", event.RequestID)
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	api.New(engine).RegisterRoutes(r)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}

func newHistoryStore(ctx context.Context, cfg *config.Config) (history.Store, func(), error) {
	switch cfg.HistoryBackend {
	case config.BackendSQLite:
		store, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Init(ctx); err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case config.BackendPostgres:
		store, err := postgres.NewStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Init(ctx); err != nil {
			store.Close()
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		return memory.NewStore(), func() {}, nil
	}
}
