package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/letaunahn/ecommerce-ai-shop-backend/config"
	paymentControllers "github.com/letaunahn/ecommerce-ai-shop-backend/controllers/payment"
	"github.com/letaunahn/ecommerce-ai-shop-backend/middleware"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	payment := api.Group("/payment")
	{
		// Webhook endpoint: signature is verified before the handler runs
		payment.POST("/webhook",
			middleware.VerifyWebhookSignature(cfg.PaymentWebhookSecret),
			paymentControllers.WebhookHandler(db),
		)
	}
}
