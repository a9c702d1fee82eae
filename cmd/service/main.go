package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/avelinak/tool-endpoint-service/internal/client"
	"github.com/avelinak/tool-endpoint-service/internal/config"
	httphandler "github.com/avelinak/tool-endpoint-service/internal/http"
	"github.com/avelinak/tool-endpoint-service/internal/observability"
	"github.com/avelinak/tool-endpoint-service/internal/snippets"
	"github.com/avelinak/tool-endpoint-service/internal/tools"
	"github.com/avelinak/tool-endpoint-service/internal/weather"
)

func main() {
	_ = godotenv.Load()

	logger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	meteo := client.NewOpenMeteoClient(cfg.GeocodingURL, cfg.ForecastURL, cfg.UpstreamTimeout)
	weatherSvc := weather.NewService(meteo, meteo)

	var store snippets.Store
	var memcacheCloser *snippets.MemcachedStore
	switch cfg.SnippetBackend {
	case "memcached":
		mc, err := snippets.NewMemcachedStore(cfg.MemcachedAddrs, cfg.MemcachedTimeout, cfg.MemcachedMaxIdleConns)
		if err != nil {
			logger.Fatal("memcached store", zap.Error(err))
		}
		memcacheCloser = mc
		store = mc
		logger.Info("snippet backend: memcached", zap.String("addrs", cfg.MemcachedAddrs))
	default:
		store = snippets.NewInMemoryStore()
		logger.Info("snippet backend: in_memory")
	}

	registry := tools.NewCatalog(weatherSvc, store)
	handler := httphandler.NewHandler(registry, logger)
	if memcacheCloser != nil {
		handler.StorePing = memcacheCloser.Ping
	}

	router := httphandler.NewRouter(handler, logger, cfg.RequestTimeout)
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", ":"+cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	<-ctx.Done()
	stop()

	logger.Info("graceful shutdown triggered")
	handler.SetDraining(true)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	logger.Info("waiting for in-flight requests", zap.Int64("count", httphandler.InFlightCount()))
	waitCtx, waitCancel := context.WithTimeout(context.Background(), cfg.ShutdownInFlightTimeout)
	defer waitCancel()
	if err := httphandler.WaitForInFlight(waitCtx, cfg.ShutdownInFlightCheckInterval); err != nil {
		logger.Warn("in-flight requests not completed", zap.Error(err), zap.Int64("remaining", httphandler.InFlightCount()))
	}

	if err := observability.FlushTelemetry(context.Background(), logger); err != nil {
		logger.Error("telemetry flush", zap.Error(err))
	}

	if memcacheCloser != nil {
		if err := memcacheCloser.Close(); err != nil {
			logger.Error("memcached close", zap.Error(err))
		}
	}
	logger.Info("shutdown complete")
}
