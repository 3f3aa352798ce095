package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
	Image       string          `json:"image"`
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}

		product := models.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price.Round(2),
			Stock:       req.Stock,
			Image:       req.Image,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
