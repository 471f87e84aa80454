package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rhenando/hyperpay-api/internal/events"
	"github.com/rhenando/hyperpay-api/internal/gateway"
	"github.com/rhenando/hyperpay-api/internal/handler"
	"github.com/rhenando/hyperpay-api/internal/repository"
	"github.com/rhenando/hyperpay-api/internal/service"
	"github.com/rhenando/hyperpay-api/pkg/config"
	"github.com/rhenando/hyperpay-api/pkg/middleware"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Info("Service configuration",
		zap.String("port", cfg.Port),
		zap.String("gateway_base_url", cfg.GatewayBaseURL),
		zap.String("currency", cfg.Currency),
		zap.String("order_table", cfg.OrderTableName),
		zap.String("cart_table", cfg.CartTableName),
		zap.Bool("events_enabled", cfg.KafkaBrokers != ""))

	// Initialize components
	dynamoClient, err := repository.NewDynamoDBClient(cfg)
	if err != nil {
		log.Fatal("Failed to create DynamoDB client:", err)
	}

	var producer service.PublisherContract
	if cfg.KafkaBrokers != "" {
		fulfillmentProducer := events.NewFulfillmentProducer(cfg.KafkaBrokers, logger)
		defer fulfillmentProducer.Close()
		producer = fulfillmentProducer
	}

	orderRepo := repository.NewOrderRepository(dynamoClient, cfg.OrderTableName)
	cartRepo := repository.NewCartRepository(dynamoClient, cfg.CartTableName)
	gatewayClient := gateway.NewClient(cfg.GatewayBaseURL, cfg.AccessToken, cfg.EntityID)
	fulfillmentService := service.NewFulfillmentService(orderRepo, cartRepo, producer, logger)
	checkoutHandler := handler.NewCheckoutHandler(gatewayClient, fulfillmentService, cfg.EntityID, cfg.Currency, cfg.RedirectBaseURL, logger)

	// Setup Gin Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.RequestID())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "hyperpay-api is running")
	})

	api := router.Group("/api")
	{
		api.POST("/create-checkout", checkoutHandler.CreateCheckout)
		api.GET("/payment-status", checkoutHandler.PaymentStatus)
		api.POST("/verify-payment", checkoutHandler.VerifyPayment)
		api.GET("/orders/:id", checkoutHandler.GetOrder)
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}
