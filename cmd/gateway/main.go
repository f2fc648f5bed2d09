package main

import (
	"context"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/itemshare/item-rental-backend/internal/config"
	"github.com/itemshare/item-rental-backend/internal/logging"
)

// The gateway is a thin reverse proxy in front of the server. It is the
// public entry point; the server itself stays on an internal address.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadGateway()
	if err != nil {
		fallback := logging.New("info", "json")
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	target, err := url.Parse(cfg.ServerURL)
	if err != nil {
		logger.Fatal().Err(err).Str("url", cfg.ServerURL).Msg("invalid server url")
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("proxy error")
		w.WriteHeader(http.StatusBadGateway)
	}

	server := &http.Server{
		Addr:    cfg.GatewayAddr,
		Handler: logRequests(logger, proxy),
	}

	go func() {
		logger.Info().Str("addr", cfg.GatewayAddr).Str("upstream", cfg.ServerURL).Msg("gateway running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("gateway error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("gateway forced to shutdown")
	}

	logger.Info().Msg("gateway exited gracefully")
}

func logRequests(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("latency", time.Since(start)).
			Msg("proxied")
	})
}
