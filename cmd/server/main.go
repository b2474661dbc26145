package main

import (
	"context"
	"customer-directory-service/internal/api"
	"customer-directory-service/internal/bootstrap"
	"customer-directory-service/internal/config"
	"customer-directory-service/internal/platform/logx"
	"customer-directory-service/internal/services"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires the configured dataset source behind the directory service and starts the HTTP server.
func main() {
	foundEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logx.New("info")
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logx.New(cfg.LogLevel)
	if !foundEnv {
		log.Debug().Msg("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := bootstrap.OpenSource(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.DatasetSource).Msg("open dataset source")
	}
	defer closeSource()

	svc := services.NewDirectoryService(source, log, services.Options{
		LoadTimeout: cfg.LoadTimeout,
		WaitTimeout: cfg.WaitTimeout,
	})

	// Warm the directory in the background; early requests wait on the same load.
	go func() {
		if err := svc.Initialize(ctx); err != nil {
			log.Warn().Err(err).Msg("initial directory load failed; requests will retry")
		}
	}()

	router := api.NewRouter(svc, cfg.Depot, log)

	srv := newHTTPServer(cfg, router)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("addr", srv.Addr).Str("source", cfg.DatasetSource).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server stopped")
		closeSource()
		os.Exit(1)
	}
}

// newHTTPServer applies the server timeouts. Writes may block for up to
// WaitTimeout while the directory loads, so the write deadline leaves room for it.
func newHTTPServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.WaitTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
