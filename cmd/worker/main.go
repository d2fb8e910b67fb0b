package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/config"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/alchemy"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/coingecko"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/mnemonic"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/nftport"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/temporal"
	"github.com/ryft-xyz/ryft-indexer/internal/ratelimit"
	"github.com/ryft-xyz/ryft-indexer/internal/store"
	"github.com/ryft-xyz/ryft-indexer/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to directory containing .env files")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()

	// Load configuration
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	logger.Info("Starting worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime,
	); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(30 * time.Second)
	redisClient := adapter.NewRedisClient(
		cfg.RateLimiter.RedisAddr,
		cfg.RateLimiter.RedisPassword,
		cfg.RateLimiter.RedisDB,
	)

	// All outbound provider calls go through the rate-limiting proxy
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, clockAdapter)
	if err != nil {
		logger.Fatal("Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() {
		if err := rateLimitProxy.Close(); err != nil {
			logger.Error(fmt.Errorf("failed to close rate limit proxy: %w", err))
		}
	}()

	// Initialize provider clients
	alchemyClient := alchemy.NewClient(
		httpClient,
		rateLimitProxy,
		cfg.Providers.AlchemyNFTURL,
		cfg.Providers.AlchemyRPCURL,
		cfg.Providers.AlchemyDashboardURL,
		cfg.Providers.AlchemyAPIKey,
		cfg.Providers.AlchemyAuthToken,
		cfg.Providers.AlchemyWebhookID,
		jsonAdapter,
	)
	mnemonicClient := mnemonic.NewClient(httpClient, rateLimitProxy, cfg.Providers.MnemonicURL, cfg.Providers.MnemonicAPIKey, jsonAdapter)
	nftportClient := nftport.NewClient(httpClient, rateLimitProxy, cfg.Providers.NFTPortURL, cfg.Providers.NFTPortAPIKey, jsonAdapter)
	coingeckoClient := coingecko.NewClient(httpClient, rateLimitProxy, cfg.Providers.CoinGeckoURL, jsonAdapter)

	// Initialize executor for activities
	executor := workflows.NewExecutor(
		dataStore,
		alchemyClient,
		mnemonicClient,
		nftportClient,
		coingeckoClient,
		jsonAdapter,
		clockAdapter,
		cfg.Webhook.GatingContractAddress,
	)

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

	workerOptions := worker.Options{
		MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
		WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
		MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
		Interceptors: []interceptor.WorkerInterceptor{
			temporal.NewSentryActivityInterceptor(),
		},
	}

	// The long queue serves the onboarding and backfill workflows, the
	// default queue serves the lightweight scheduled refreshes
	longWorker := worker.New(temporalClient, cfg.Temporal.LongTaskQueue, workerOptions)
	defaultWorker := worker.New(temporalClient, cfg.Temporal.DefaultTaskQueue, workerOptions)

	workerCore := workflows.NewWorkerCore(executor)

	// Register workflows
	longWorker.RegisterWorkflow(workerCore.OnboardWallet)
	longWorker.RegisterWorkflow(workerCore.RefreshCollection)
	longWorker.RegisterWorkflow(workerCore.SyncCollectionTransfers)
	defaultWorker.RegisterWorkflow(workerCore.RefreshAllMetrics)
	defaultWorker.RegisterWorkflow(workerCore.RefreshAllHistories)
	defaultWorker.RegisterWorkflow(workerCore.RefreshTrending)
	defaultWorker.RegisterWorkflow(workerCore.RecordEthPrice)
	defaultWorker.RegisterWorkflow(workerCore.SnapshotPortfolios)
	logger.Info("Registered workflows")

	// Register activities on both queues since every workflow schedules its
	// activities on its own task queue
	for _, w := range []worker.Worker{longWorker, defaultWorker} {
		w.RegisterActivity(executor.RegisterWalletWebhook)
		w.RegisterActivity(executor.FetchOwnedTokens)
		w.RegisterActivity(executor.PersistWalletOwnership)
		w.RegisterActivity(executor.ComputePortfolioTotal)
		w.RegisterActivity(executor.FetchWalletTransactions)
		w.RegisterActivity(executor.CheckWalletAccessGate)
		w.RegisterActivity(executor.FinalizeWallet)
		w.RegisterActivity(executor.DeriveTrackedWalletThumbnail)
		w.RegisterActivity(executor.FetchCollectionNFTs)
		w.RegisterActivity(executor.ComputeCollectionRarity)
		w.RegisterActivity(executor.RelinkTransactions)
		w.RegisterActivity(executor.RelinkWalletHoldings)
		w.RegisterActivity(executor.ListReleasedCollectionIDs)
		w.RegisterActivity(executor.RefreshCollectionMetrics)
		w.RegisterActivity(executor.RefreshCollectionHistories)
		w.RegisterActivity(executor.RefreshTrendingCollections)
		w.RegisterActivity(executor.RecordEthPrice)
		w.RegisterActivity(executor.SnapshotWalletPortfolios)
		w.RegisterActivity(executor.BackfillCollectionTransfers)
	}
	logger.Info("Registered activities")

	// Start workers
	if err := longWorker.Start(); err != nil {
		logger.Fatal("Failed to start long queue worker", zap.Error(err))
	}
	if err := defaultWorker.Start(); err != nil {
		longWorker.Stop()
		logger.Fatal("Failed to start default queue worker", zap.Error(err))
	}
	logger.Info("Workers started and listening for tasks",
		zap.String("long_task_queue", cfg.Temporal.LongTaskQueue),
		zap.String("default_task_queue", cfg.Temporal.DefaultTaskQueue),
	)

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down workers...")
	longWorker.Stop()
	defaultWorker.Stop()
	logger.Info("Workers stopped")
}
