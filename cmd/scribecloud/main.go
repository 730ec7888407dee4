package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/nolan/scribecloud/internal/api"
	"github.com/nolan/scribecloud/internal/cache"
	"github.com/nolan/scribecloud/internal/config"
	"github.com/nolan/scribecloud/internal/ent"
	"github.com/nolan/scribecloud/internal/service"
	"github.com/nolan/scribecloud/internal/telemetry"
	"github.com/nolan/scribecloud/internal/transcriber/factory"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		log.Fatalf("scribecloud: %v", err)
	}
}

func run() error {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, "scribecloud", cfg.Environment, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown", "error", err)
		}
	}()

	db, err := ent.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Schema.Create(ctx); err != nil {
		return err
	}

	c, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, "scribecloud")
	if err != nil {
		return err
	}
	defer c.Close()

	trans, err := factory.NewTranscriber(cfg)
	if err != nil {
		return err
	}

	var mailer service.Mailer
	if cfg.SMTPHost != "" {
		mailer = service.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		mailer = service.NewLogMailer(logger)
	}

	ledger := service.NewLedgerService(db, logger)
	svcs := &api.Services{
		Ledger:        ledger,
		Transfer:      service.NewTransferService(db, ledger, logger),
		Auth:          service.NewAuthService(db, ledger, cfg.JWTSecret, cfg.BaseURL, mailer, logger),
		Admin:         service.NewAdminService(db, ledger, cfg.JWTSecret, logger),
		Transcription: service.NewTranscriptionService(db, trans, ledger, c, logger),
	}
	if cfg.StripeSecretKey != "" {
		svcs.Billing = service.NewBillingService(db, ledger, cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.FrontendURL, logger)
	} else {
		logger.Warn("stripe not configured, billing routes disabled")
	}

	cleanupInterval, err := time.ParseDuration(cfg.CleanupInterval)
	if err != nil {
		return err
	}
	retention, err := time.ParseDuration(cfg.AnonymousRetention)
	if err != nil {
		return err
	}
	cron := service.NewCronService(ledger, retention, log.New(os.Stdout, "", log.LstdFlags), cleanupInterval)
	cron.Start()
	defer cron.Stop()

	router := api.NewRouter(cfg, svcs, logger, version)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           otelhttp.NewHandler(router, "http.server"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("scribecloud listening",
			"addr", cfg.ListenAddr, "transcriber", cfg.Transcriber, "version", version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
