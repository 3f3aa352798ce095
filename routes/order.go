package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/letaunahn/ecommerce-ai-shop-backend/config"
	orderControllers "github.com/letaunahn/ecommerce-ai-shop-backend/controllers/order"
	"github.com/letaunahn/ecommerce-ai-shop-backend/middleware"
	"github.com/letaunahn/ecommerce-ai-shop-backend/payments"
	"gorm.io/gorm"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, gw payments.Gateway, cfg config.Config) {
	orders := api.Group("/order")
	orders.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		// Place a new order, returns the payment client secret
		orders.POST("/place", orderControllers.PlaceOrderHandler(db, gw, cfg.PaymentCurrency))

		// Buyer's own orders
		orders.GET("/my", orderControllers.GetMyOrdersHandler(db))

		// Single order with items and shipping info
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}

	// websocket endpoint for real-time order updates (dashboard)
	api.GET("/order-feed/ws", orderControllers.OrderWebSocketHandler)
}
