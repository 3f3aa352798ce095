package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /api/admin/orders/export-excel
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("ShippingInfo").
			Preload("Payments").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "BuyerID", "TotalPrice", "TaxPrice", "ShippingPrice",
			"Status", "PaymentStatus", "PaidAt", "ShipTo", "Country", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.BuyerID)
			row.AddCell().SetValue(o.TotalPrice.StringFixed(2))
			row.AddCell().SetValue(o.TaxPrice.StringFixed(2))
			row.AddCell().SetValue(o.ShippingPrice.StringFixed(2))
			row.AddCell().SetValue(string(o.OrderStatus))

			paymentStatus := ""
			if len(o.Payments) > 0 {
				paymentStatus = string(o.Payments[0].PaymentStatus)
			}
			row.AddCell().SetValue(paymentStatus)

			paidAt := ""
			if o.PaidAt != nil {
				paidAt = o.PaidAt.Format("2006-01-02 15:04:05")
			}
			row.AddCell().SetValue(paidAt)

			shipTo, country := "", ""
			if o.ShippingInfo != nil {
				shipTo = o.ShippingInfo.FullName
				country = o.ShippingInfo.Country
			}
			row.AddCell().SetValue(shipTo)
			row.AddCell().SetValue(country)

			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
