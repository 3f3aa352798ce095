package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/letaunahn/ecommerce-ai-shop-backend/controllers/product"
	"gorm.io/gorm"
)

func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/product")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))
	}
}
