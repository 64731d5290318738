package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	catalogapp "github.com/muhammadheryan/supplier-sourcing/application/catalog"
	searchapp "github.com/muhammadheryan/supplier-sourcing/application/search"
	submissionapp "github.com/muhammadheryan/supplier-sourcing/application/submission"
	"github.com/muhammadheryan/supplier-sourcing/cmd/config"
	redisclient "github.com/muhammadheryan/supplier-sourcing/cmd/redis"
	_ "github.com/muhammadheryan/supplier-sourcing/docs"
	catalogRepo "github.com/muhammadheryan/supplier-sourcing/repository/catalog"
	redisRepo "github.com/muhammadheryan/supplier-sourcing/repository/redis"
	submissionRepo "github.com/muhammadheryan/supplier-sourcing/repository/submission"
	txRepo "github.com/muhammadheryan/supplier-sourcing/repository/tx"
	"github.com/muhammadheryan/supplier-sourcing/thirdparty/rabbitmq"
	"github.com/muhammadheryan/supplier-sourcing/thirdparty/rapidapi"
	"github.com/muhammadheryan/supplier-sourcing/transport"
	"github.com/muhammadheryan/supplier-sourcing/utils/logger"
	validatorx "github.com/muhammadheryan/supplier-sourcing/utils/validator"
	"go.uber.org/zap"
)

// @title SUPPLIER SOURCING API
// @version 1.0
// @description Supplier sourcing API Documentation
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey InternalKey
// @in header
// @name X-Internal-Key
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("db_driver", cfg.Database.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect(cfg.Database.Driver, cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Redis is only needed for the search cache
	if cfg.Redis.Host != "" && cfg.Search.CacheTTL > 0 {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// Initialize repositories
	CatalogRepo := catalogRepo.NewCatalogRepository(cfg.Catalog.CategoriesFile, cfg.Catalog.CountriesFile)
	SubmissionRepo := submissionRepo.NewSubmissionRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	if err := SubmissionRepo.EnsureSchema(ctx); err != nil {
		logger.Fatal("err ensure schema", zap.Error(err))
	}

	// Submission events are optional
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Host != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p

		if cfg.RabbitMQ.WebhookURL != "" {
			consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.WebhookURL)
			if err != nil {
				logger.Fatal("err create consumer", zap.Error(err))
			}
			defer consumer.Close()
			if err := consumer.Start(ctx); err != nil {
				logger.Fatal("err start consumer", zap.Error(err))
			}
		}
	}

	// Initialize application layers
	CatalogApp := catalogapp.NewCatalogApp(CatalogRepo)
	SearchApp := searchapp.NewSearchApp(cfg, rapidapi.NewClient(cfg.Upstream), RedisRepo)
	SubmissionApp := submissionapp.NewSubmissionApp(TxRepo, SubmissionRepo, publisher)

	httpTransport := transport.NewTransport(cfg, CatalogApp, SearchApp, SubmissionApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("Server exited cleanly")
}
