package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"sunsetguide/internal/directory"
	"sunsetguide/internal/directory/export"
	directoryhandler "sunsetguide/internal/directory/handler"
	"sunsetguide/internal/notification"
	notificationhandler "sunsetguide/internal/notification/handler"
	"sunsetguide/internal/platform/config"
	"sunsetguide/internal/platform/httpserver"
	"sunsetguide/internal/platform/logger"
	"sunsetguide/internal/platform/metrics"
	"sunsetguide/internal/platform/postgres"
	"sunsetguide/internal/platform/redis"
	"sunsetguide/internal/submission/inflight"
	submissionhandler "sunsetguide/internal/submission/handler"
	submissionmetrics "sunsetguide/internal/submission/metrics"
	"sunsetguide/internal/submission/service"
	"sunsetguide/internal/submission/store"
	httptransport "sunsetguide/internal/transport/http"
	"sunsetguide/pkg/platform/circuit"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.New(reg)

	health := map[string]httptransport.HealthCheck{}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	var submissions service.Store
	if db != nil {
		defer closeDB(db, log)
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		submissions = store.NewPostgres(db)
		health["database"] = db.PingContext
		log.Info("using postgres submission store")
	} else {
		submissions = store.NewInMemoryStore()
		log.Warn("DATABASE_URL not set, submissions are kept in memory")
	}

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var lock service.Lock
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		lock = inflight.NewFallback(
			inflight.NewRedis(rdb.Client),
			inflight.NewInMemory(),
			circuit.New("inflight-redis"),
			log,
		)
		health["redis"] = rdb.Health
	} else {
		lock = inflight.NewInMemory()
	}

	var sender notification.Sender
	if cfg.Mail.APIKey != "" {
		sender = notification.NewResendSender(cfg.Mail.APIKey, cfg.Mail.From, cfg.Mail.To)
	} else {
		sender = notification.NewLogSender(log)
		log.Warn("RESEND_API_KEY not set, notifications are logged only")
	}
	dispatcher := notification.NewDispatcher(sender,
		notification.WithLogger(log),
		notification.WithMetrics(notification.NewMetrics(reg)),
	)

	svc := service.New(submissions, dispatcher,
		service.WithLogger(log),
		service.WithMetrics(submissionmetrics.New(reg)),
		service.WithLock(lock, config.InFlightTTL),
		service.WithDigestKey([]byte(cfg.LogDigestKey)),
	)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:   log,
		Gatherer: reg,
		Health:   health,
		Handlers: []httptransport.Registrar{
			directoryhandler.New(directory.Default(), export.DefaultSite, log, httpMetrics),
			notificationhandler.New(dispatcher, log, httpMetrics),
			submissionhandler.New(svc, log, httpMetrics),
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting sunsetguide", "addr", cfg.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func closeDB(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Warn("closing database", "error", err)
	}
}
