package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/BryanRF/full-version-sub000/repository"
	"github.com/BryanRF/full-version-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateSale registers a sale and decrements product stock.
// @Summary Create sale
// @Description Registers a sale with its detail lines. Stock is decremented per sold product inside one transaction.
// @Tags Sales
// @Accept json
// @Produce json
// @Param body body models.CreateSaleRequest true "Sale data"
// @Success 201 {object} models.Sale
// @Failure 400 {object} models.ErrorResponse
// @Router /api/sales [post]
func CreateSale(db *gorm.DB, notifier services.NotificationPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateSaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}
		if len(req.Details) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A sale needs at least one detail line"})
			return
		}

		var customer models.Customer
		if err := db.First(&customer, req.CustomerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		sale := models.Sale{
			Number:     repository.GenerateDocumentNumber("VT"),
			CustomerID: req.CustomerID,
			Status:     "completed",
			SoldBy:     req.SoldBy,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		var lowStock []string
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&sale).Error; err != nil {
				return err
			}
			total := decimal.Zero
			for _, d := range req.Details {
				var product models.Product
				if err := tx.First(&product, d.ProductID).Error; err != nil {
					return fmt.Errorf("product %d not found", d.ProductID)
				}
				if product.Stock < d.Quantity {
					return fmt.Errorf("insufficient stock for product %s (%d available)", product.Code, product.Stock)
				}
				subtotal := d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
				detail := models.SaleDetail{
					SaleID:    sale.ID,
					ProductID: d.ProductID,
					Quantity:  d.Quantity,
					UnitPrice: d.UnitPrice,
					Subtotal:  subtotal,
				}
				if err := tx.Create(&detail).Error; err != nil {
					return err
				}
				newStock := product.Stock - d.Quantity
				if err := tx.Model(&product).Updates(map[string]interface{}{
					"stock":      newStock,
					"updated_at": time.Now(),
				}).Error; err != nil {
					return err
				}
				if newStock <= product.MinStock {
					lowStock = append(lowStock, product.Code)
				}
				total = total.Add(subtotal)
			}
			return tx.Model(&sale).Update("total", total).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create sale", "details": err.Error()})
			return
		}

		db.Preload("Customer").Preload("Details.Product").First(&sale, sale.ID)
		c.JSON(http.StatusCreated, sale)

		for _, code := range lowStock {
			notifier.NotifyRole(models.RolePurchasing,
				"Stock bajo",
				fmt.Sprintf("El producto %s quedó por debajo del stock mínimo", code),
				"/products?active=true")
		}

		repository.SaveActivityLog(db, models.ActivityLog{
			EventContext: "Sale",
			EventName:    "Create",
			Description:  "Registered sale " + sale.Number,
			UserName:     sale.SoldBy,
		})
	}
}

// GetSales lists sales, newest first.
// @Summary List sales
// @Tags Sales
// @Produce json
// @Success 200 {array} models.Sale
// @Router /api/sales [get]
func GetSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sales []models.Sale
		if err := db.Preload("Customer").Order("id DESC").Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

// GetSale fetches one sale with its details.
// @Summary Get sale
// @Tags Sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} models.Sale
// @Failure 404 {object} models.ErrorResponse
// @Router /api/sales/{id} [get]
func GetSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale id"})
			return
		}
		var sale models.Sale
		if err := db.Preload("Customer").Preload("Details.Product").First(&sale, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}
