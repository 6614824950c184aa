package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpulse/internal/adapter/api"
	"adpulse/internal/adapter/http"
	"adpulse/internal/adapter/redis"
	"adpulse/internal/adapter/sse"
	"adpulse/internal/adapter/usecase"
	"adpulse/internal/config"
	"adpulse/internal/metrics"
)

// main is the entry point of the sync daemon. It loads configuration,
// wires the dashboard and detail controllers to the upstream API, exposes
// their views over HTTP and a websocket feed, then runs until a
// termination signal arrives and shuts everything down in order.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector()
	registry.MustRegister(
		collector,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	hub := httpadapter.NewHub(httpadapter.DefaultFeedBuffer, logger)
	defer hub.Close()
	sinks := usecase.Sinks{hub}

	if cfg.Redis.Address != "" {
		client, err := redisadapter.Connect(ctx, cfg.Redis.Address)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		publisher := redisadapter.NewViewPublisher(client, cfg.Redis.ChannelPrefix, redisadapter.DefaultQueueSize, logger)
		defer publisher.Close()
		sinks = append(sinks, publisher)
		logger.Info("publishing views to redis",
			slog.String("dashboard_channel", publisher.DashboardChannel()),
			slog.String("detail_channel", publisher.DetailChannel()))
	}

	// Neither client carries a whole-request timeout: reads are bounded by
	// the controllers through their contexts and streams stay open.
	reader := api.NewClient(cfg.Upstream.BaseURL, &http.Client{}, logger)
	dialer := sse.NewDialer(cfg.Upstream.BaseURL, &http.Client{}, logger)

	dashboard := usecase.NewDashboardSync(usecase.DashboardConfig{
		Reader:          reader,
		RetryDelay:      cfg.Sync.RetryDelay,
		RefreshInterval: cfg.Sync.RefreshInterval,
		RequestTimeout:  cfg.Upstream.RequestTimeout,
		Sink:            sinks,
		Metrics:         collector,
		Logger:          logger,
	})
	detailCfg := usecase.DetailConfig{
		Dialer:         dialer,
		ReconnectDelay: cfg.Sync.ReconnectDelay,
		RequestTimeout: cfg.Upstream.RequestTimeout,
		Sink:           sinks,
		Metrics:        collector,
		Logger:         logger,
	}
	if cfg.Sync.PrimeDetail {
		detailCfg.Reader = reader
	}
	detail := usecase.NewDetailSync(detailCfg)

	dashboard.Start(ctx)
	logger.Info("syncing with upstream", slog.String("base_url", cfg.Upstream.BaseURL.String()))

	handler := httpadapter.NewHandler(dashboard, detail, hub,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	}
	dashboard.Stop()
	detail.Close()
	logger.Info("controllers stopped")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
