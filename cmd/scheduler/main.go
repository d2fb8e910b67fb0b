package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/config"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/temporal"
	"github.com/ryft-xyz/ryft-indexer/internal/scheduler"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to directory containing .env files")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()

	// Load configuration
	cfg, err := config.LoadSchedulerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "scheduler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	logger.Info("Starting scheduler")

	// Connect to Temporal
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.Fatal("Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.Info("Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	refreshScheduler := scheduler.New(scheduler.Config{
		MetricsInterval:      cfg.Scheduler.MetricsInterval,
		TrendingInterval:     cfg.Scheduler.TrendingInterval,
		HistoryInterval:      cfg.Scheduler.HistoryInterval,
		EthPriceInterval:     cfg.Scheduler.EthPriceInterval,
		PortfolioInterval:    cfg.Scheduler.PortfolioInterval,
		TransferSyncInterval: cfg.Scheduler.TransferSyncInterval,
		DefaultTaskQueue:     cfg.Temporal.DefaultTaskQueue,
		LongTaskQueue:        cfg.Temporal.LongTaskQueue,
	}, adapter.NewClock(), temporalClient)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start scheduler in a goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- refreshScheduler.Start(ctx)
	}()

	// Wait for interrupt signal or scheduler error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("Scheduler failed", zap.Error(err))
		}
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := refreshScheduler.Stop(shutdownCtx); err != nil {
		logger.Error(fmt.Errorf("failed to stop scheduler gracefully: %w", err))
	}

	logger.Info("Scheduler stopped")
}
