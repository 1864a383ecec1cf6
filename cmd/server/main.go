package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hng13/deploypage/internal/api"
	"github.com/hng13/deploypage/internal/config"
	"github.com/hng13/deploypage/internal/domain"
	"github.com/hng13/deploypage/internal/metrics"
	"github.com/hng13/deploypage/internal/page"
	"github.com/hng13/deploypage/internal/ratelimiter"
	"github.com/hng13/deploypage/internal/server"
)

func main() {
	bootLogger, _ := zap.NewProduction()

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := newLogger(cfg)
	if err != nil {
		bootLogger.Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync() //nolint:errcheck

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	limiter := ratelimiter.New(cfg.RateLimitRPS, cfg.RateLimitBurst)

	renderer, err := page.NewRenderer(cfg.PageVariant, domain.SystemClock{})
	if err != nil {
		logger.Fatal("failed to load page template", zap.Error(err))
	}

	// ---- HTTP server ----
	router := api.NewRouter(renderer, reg, m, limiter, logger)
	srv := server.New(router, cfg.Addr(), cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout, logger)

	// Bind before serving so a taken port terminates the process at startup.
	if err := srv.Listen(); err != nil {
		logger.Fatal("failed to bind", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("serving deployment page",
		zap.String("addr", srv.Addr()),
		zap.String("variant", string(renderer.Variant())),
		zap.Bool("rate_limited", limiter != nil),
	)

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// newLogger builds the production zap logger with the configured level and
// encoding.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = level
	if cfg.LogFormat == "console" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return zcfg.Build()
}
