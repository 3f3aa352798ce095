package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/letaunahn/ecommerce-ai-shop-backend/config"
	"github.com/letaunahn/ecommerce-ai-shop-backend/payments"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the product, order,
// payment and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gw payments.Gateway, cfg config.Config) {
	api := r.Group("/api")

	SetupProductRoutes(api, db)
	SetupOrderRoutes(api, db, gw, cfg)
	SetupPaymentRoutes(api, db, cfg)
	SetupAdminRoutes(api, db, cfg)
}
