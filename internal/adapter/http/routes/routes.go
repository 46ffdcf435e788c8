package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "balanca_xpto/docs" // This will be auto-generated
	"balanca_xpto/internal/adapter/http/handlers"
	"balanca_xpto/internal/adapter/http/middleware"
	repository2 "balanca_xpto/internal/adapter/persistence/repository"
	"balanca_xpto/internal/config"
	"balanca_xpto/internal/infrastructure/database"
	"balanca_xpto/internal/infrastructure/metrics"
	"balanca_xpto/internal/pkg/clock"
	"balanca_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	getRoutes(cfg, pool, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server listening",
			zap.String("app", cfg.App.Name),
			zap.String("version", cfg.App.Version),
			zap.String("port", cfg.HTTP.Port),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config, pool *pgxpool.Pool, logger *zap.Logger) {
	registryRepo := repository2.NewRegistryPostgresRepository(pool)
	priceRepo := repository2.NewPricePostgresRepository(pool)
	ticketRepo := repository2.NewTicketPostgresRepository(pool)
	txManager := repository2.NewTxManager(pool)
	clk := clock.NewRealClock()

	registryUseCase := usecase.NewRegistryUseCase(registryRepo)
	pricingUseCase := usecase.NewPricingUseCase(priceRepo, txManager, clk, logger)
	ticketUseCase := usecase.NewTicketUseCase(ticketRepo, pricingUseCase, clk, logger, cfg.Pricing.ResolveOnCreate)

	registryHandler := handlers.NewRegistryHandler(registryUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	ticketHandler := handlers.NewTicketHandler(ticketUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWeighbridgeRoutes(v1, registryHandler, pricingHandler, ticketHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(metrics.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}
