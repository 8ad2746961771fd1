package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"pinpay/internal/gateway"
	"pinpay/internal/handler/api"
	"pinpay/internal/middleware"
	"pinpay/internal/repository"
)

// Setup configures all routes for the Echo server.
func Setup(
	e *echo.Echo,
	gw *gateway.PinGateway,
	store *repository.Store,
	logger *zap.Logger,
	apiKey string,
	guard middleware.IdempotencyGuard,
) {
	// Global middleware
	e.Use(echomw.Recover())
	e.Use(middleware.CORS())

	// Handlers
	chargeHandler := api.NewChargeHandler(gw, store, logger)
	cardHandler := api.NewCardHandler(gw, logger)
	customerHandler := api.NewCustomerHandler(gw, store, logger)

	// API group with auth + idempotency middleware
	apiGroup := e.Group("/api")
	apiGroup.Use(middleware.APIAuth(apiKey))
	apiGroup.Use(middleware.Idempotency(guard))

	apiGroup.POST("/charges", chargeHandler.Create)
	apiGroup.GET("/charges", chargeHandler.List)
	apiGroup.GET("/charges/:token", chargeHandler.Get)
	apiGroup.POST("/charges/:token/refunds", chargeHandler.Refund)
	apiGroup.GET("/charges/:token/refunds", chargeHandler.ListRefunds)

	apiGroup.POST("/cards", cardHandler.Tokenize)

	apiGroup.POST("/customers", customerHandler.Create)
	apiGroup.PUT("/customers/:token", customerHandler.Update)
	apiGroup.GET("/customers/:token", customerHandler.Get)
}
