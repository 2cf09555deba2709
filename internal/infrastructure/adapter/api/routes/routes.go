package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	walletHandler *handler.WalletHandler,
	webhookHandler *handler.WebhookHandler,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	walletRoutes := router.Group("/wallet")
	{
		// Signed gateway notifications carry no caller identity
		walletRoutes.POST("/webhook", webhookHandler.HandleNotification)

		authenticated := walletRoutes.Group("")
		authenticated.Use(middleware.Identity())
		{
			authenticated.POST("/fund", walletHandler.Fund)
			authenticated.POST("/transfer", walletHandler.Transfer)
			authenticated.GET("/balance", walletHandler.GetBalance)
			authenticated.GET("/transactions", walletHandler.GetTransactions)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
