package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/config"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/database"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/hashing"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/health"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/jwt"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/logger"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/middleware"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/nsq"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/otp"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/server"
	"github.com/opengovsg/FormSG-sub009/services/verification"
	"github.com/opengovsg/FormSG-sub009/services/verification/gateway"
	gateway_nsq "github.com/opengovsg/FormSG-sub009/services/verification/gateway/nsq"
	"github.com/opengovsg/FormSG-sub009/services/verification/handler"
	"github.com/opengovsg/FormSG-sub009/services/verification/repository"
	"github.com/opengovsg/FormSG-sub009/services/verification/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/verification.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("logger", func(context.Context) error { return zapLogger.Close() })

	// Initialize MongoDB
	mongoClient, err := database.NewMongoClient(configs.Mongo)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", logger.Err(err))
	}
	shutdown.Register("mongo", func(context.Context) error { return mongoClient.Close() })

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	// Initialize event producer
	var publisher gateway_nsq.Publisher
	if configs.NSQ.Address != "" {
		producer, err := nsq.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		publisher = producer
		shutdown.Register("nsq", func(context.Context) error {
			producer.Stop()
			return nil
		})
	} else {
		zapLogger.Warn("NSQ address not set, verification events are not published")
	}

	// Initialize repositories
	txnRepo := repository.NewTransactionRepo(configs, mongoClient.Database())
	if err := txnRepo.EnsureIndexes(context.Background()); err != nil {
		zapLogger.Fatal("Failed to create transaction indexes", logger.Err(err))
	}
	formRepo := repository.NewFormRepo(configs, mongoClient.Database())
	quotaRepo := repository.NewSmsQuotaRepo(redisClient)

	// Initialize gateway
	signer, err := jwt.NewSigner(configs.Signing)
	if err != nil {
		zapLogger.Fatal("Failed to initialize signer", logger.Err(err))
	}
	verificationGW := gateway.NewVerificationGW(configs, signer, publisher)

	// Initialize usecase
	var verificationUC verification.VerificationUC
	if configs.Verification.Enabled {
		hasher := hashing.NewHasher(configs.Verification.HashCost, configs.Verification.HashConcurrency)
		verificationUC = usecase.NewVerificationUC(
			configs, txnRepo, formRepo, quotaRepo, verificationGW, hasher, otp.NewGenerator(hasher),
		)
	} else {
		zapLogger.Warn("Field verification is disabled")
		verificationUC = usecase.NewDisabledUC()
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService()
	healthService.AddChecker("mongo", health.NewPingChecker(mongoClient))
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthService)

	// Register service routes
	handler.NewHandler(verificationUC, configs, redisClient.GetClient()).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
		os.Exit(1)
	}
}
