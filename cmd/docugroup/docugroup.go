package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docugroup/internal/config"
	apphttp "docugroup/internal/http"
	"docugroup/internal/http/middleware"
	"docugroup/internal/logging"
	"docugroup/internal/web"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil && cfg == nil {
		panic(err)
	}

	l := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	slog.SetDefault(l)

	if err != nil {
		slog.Warn("config.load", "path", *cfgPath, "err", err)
		slog.Warn("running with default values")
	}

	var rl *middleware.RateLimiter
	if cfg.HTTP.RateLimit > 0 {
		proxies, err := middleware.ParseTrustedProxies(cfg.HTTP.TrustedProxies)
		if err != nil {
			slog.Error("http.trusted_proxies", "err", err)
			os.Exit(1)
		}
		rl = middleware.NewRateLimiter(cfg.HTTP.RateLimit, cfg.HTTP.RateWindow).TrustProxies(proxies)
	}

	mux, err := apphttp.NewMux(apphttp.Options{
		Site:        web.Site{Title: cfg.Site.Title, Lang: cfg.Site.Lang},
		Limiter:     rl,
		Environment: cfg.Environment,
	})
	if err != nil {
		slog.Error("http.mux", "err", err)
		os.Exit(1)
	}
	srv := &http.Server{
		Addr:         cfg.HTTP.Address, // e.g. ":8080"
		Handler:      apphttp.WithStandardMiddleware(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("http.starting", "addr", cfg.HTTP.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http.listen", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("http.shutting_down")
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("http.shutdown", "err", err)
	}
	slog.Info("http.stopped")
}
