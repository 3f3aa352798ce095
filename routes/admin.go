package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/letaunahn/ecommerce-ai-shop-backend/config"
	orderControllers "github.com/letaunahn/ecommerce-ai-shop-backend/controllers/order"
	productControllers "github.com/letaunahn/ecommerce-ai-shop-backend/controllers/product"
	"github.com/letaunahn/ecommerce-ai-shop-backend/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires the
// dashboard API key.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireAPIKey(cfg.AdminAPIKey))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}
	}
}
