// cmd/plan-server/main.go
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fitplan-engine/internal/common/alerts"
	"fitplan-engine/internal/common/config"
	"fitplan-engine/internal/common/database"
	"fitplan-engine/internal/common/logger"
	"fitplan-engine/internal/common/observability"
	"fitplan-engine/internal/engine/builder"
	"fitplan-engine/internal/engine/catalog"
	"fitplan-engine/internal/engine/orchestrator"
	"fitplan-engine/internal/engine/validator"
	"fitplan-engine/internal/genai"
	"fitplan-engine/internal/server"
	"fitplan-engine/internal/store"
	"fitplan-engine/pkg/catalogfile"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrapLog := logger.New("info", "console")
		bootstrapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting plan server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	alerter, err := alerts.New(ctx, cfg.Alerts, log)
	if err != nil {
		zapLog.Warn("alerting disabled", zap.Error(err))
	}

	// --- Catalog: built-ins plus the optional extension file ---
	cat := catalog.Builtin()
	if path := cfg.Catalog.ExtensionPath; path != "" {
		ext, err := catalogfile.Load(path)
		if err != nil {
			zapLog.Fatal("catalog extension load failed", zap.String("path", path), zap.Error(err))
		}
		if err := ext.Validate(); err != nil {
			zapLog.Fatal("catalog extension rejected", zap.String("path", path), zap.Error(err))
		}
		exercises, meals := ext.ApplyTo(cat)
		zapLog.Info("catalog extension applied",
			zap.String("path", path),
			zap.Int("exercises", exercises),
			zap.Int("meals", meals),
		)
	}
	if err := cat.Validate(); err != nil {
		// An unusable catalog means fallback plans cannot be built,
		// which is the one outage the pipeline cannot absorb.
		if alerter != nil {
			alerter.OperatorAlert(ctx, "plan server failed to start", err.Error())
		}
		zapLog.Fatal("catalog validation failed", zap.Error(err))
	}

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Wire the generation pipeline ---
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen := orchestrator.New(
		cfg.GenAI,
		cfg.Generation,
		genai.NewHTTPClient(cfg.GenAI, log),
		validator.New(log),
		builder.New(cat, log, rng),
		log,
	)

	plans := store.NewPlanStore(pg, log)
	cache := store.NewPlanCache(rdb, config.GetDuration(cfg.Database.Redis.CacheTTL), log)

	srv := server.New(cfg.Server, gen, plans, cache, pg, rdb, obs, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	case sig := <-stop:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("plan server stopped")
}
