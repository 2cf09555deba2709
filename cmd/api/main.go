package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	walletUseCase "github.com/amirhossein-jamali/wallet-processor/internal/domain/usecase/wallet"
	webhookUseCase "github.com/amirhossein-jamali/wallet-processor/internal/domain/usecase/webhook"
	workerUseCase "github.com/amirhossein-jamali/wallet-processor/internal/domain/usecase/worker"

	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/database"
	redislock "github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/lock"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/paystack"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/queue/rabbitmq"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Database
	conn, err := database.NewConnection(database.FromAppConfig(cfg))
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer conn.Close()

	if err := database.Migrate(conn.DB); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Redis lock backend
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	lockManager := redislock.NewRedisLockManager(redisClient, appLogger)

	// RabbitMQ credit pipeline
	producer, err := rabbitmq.NewProducer(cfg.RabbitMQ.URL, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect queue producer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer producer.Close()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.URL, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect queue consumer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer consumer.Close()

	// Payment gateway
	gateway := paystack.NewClient(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey, cfg.Paystack.CallbackURL)

	// Repositories and use cases
	accountRepo := repository.NewAccountRepository(conn.DB, tp, appLogger)

	walletService := walletUseCase.NewService(accountRepo, lockManager, gateway, tp, appLogger).
		WithTransferLockTTL(cfg.Wallet.TransferLockTTL).
		WithMinimums(cfg.Wallet.MinTransferKobo, cfg.Wallet.MinFundingKobo)

	verifier := webhookUseCase.NewSignatureVerifier(cfg.Paystack.WebhookSecret)
	intake := webhookUseCase.NewIntake(verifier, producer, tp, appLogger)

	creditWorker := workerUseCase.NewCreditWorker(accountRepo, lockManager, tp, appLogger).
		WithFundingLockTTL(cfg.Wallet.FundingLockTTL)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if err := consumer.Start(workerCtx, creditWorker); err != nil {
		appLogger.Error("Failed to start credit consumer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// HTTP API
	walletHandler := handler.NewWalletHandler(walletService, appLogger)
	webhookHandler := handler.NewWebhookHandler(intake, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, walletHandler, webhookHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop taking new deliveries before the HTTP server drains
	stopWorker()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or WP_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or WP_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or WP_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or WP_DB_NAME environment variable)")
	}

	if cfg.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "redis.addr")
	}
	if cfg.RabbitMQ.URL == "" {
		missingConfigs = append(missingConfigs, "rabbitmq.url")
	}

	if cfg.Paystack.SecretKey == "" {
		missingConfigs = append(missingConfigs, "paystack.secretKey (or WP_PAYSTACK_SECRET_KEY environment variable)")
	}
	if cfg.Paystack.WebhookSecret == "" {
		missingConfigs = append(missingConfigs, "paystack.webhookSecret (or WP_PAYSTACK_WEBHOOK_SECRET environment variable)")
	}

	if cfg.Wallet.TransferLockTTL == 0 {
		missingConfigs = append(missingConfigs, "wallet.transferLockTtl")
	}
	if cfg.Wallet.FundingLockTTL == 0 {
		missingConfigs = append(missingConfigs, "wallet.fundingLockTtl")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
