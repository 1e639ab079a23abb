package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/jpeg"
	"net/http"
	"strconv"
	"time"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/BryanRF/full-version-sub000/repository"
	"github.com/BryanRF/full-version-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// generateOrderQRCode renders the order reference as a QR code image
func generateOrderQRCode(data interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	qr, err := qrcode.New(string(jsonData), qrcode.Medium)
	if err != nil {
		return nil, err
	}

	img := qr.Image(200)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// CreatePurchaseOrder generates an order from a processed quotation response.
// @Summary Create purchase order
// @Description Copies the priced line items of a quotation response into a new purchase order. Rows without a resolved catalog product are skipped.
// @Tags PurchaseOrders
// @Accept json
// @Produce json
// @Param body body models.CreatePurchaseOrderRequest true "Order data"
// @Success 201 {object} models.PurchaseOrder
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/purchase-orders [post]
func CreatePurchaseOrder(db *gorm.DB, notifier services.NotificationPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreatePurchaseOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}

		var response models.QuotationResponse
		if err := db.Preload("Items").First(&response, req.ResponseID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation response not found"})
			return
		}

		var quotation models.Quotation
		if err := db.First(&quotation, response.QuotationID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
			return
		}

		order := models.PurchaseOrder{
			Number:      repository.GenerateDocumentNumber("OC"),
			QuotationID: quotation.ID,
			SupplierID:  quotation.SupplierID,
			Status:      models.PurchaseOrderStatusIssued,
			Notes:       req.Notes,
			IssuedBy:    req.IssuedBy,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			total := decimal.Zero
			ordered := 0
			for _, item := range response.Items {
				if item.ProductID == nil {
					continue
				}
				subtotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.QuantityQuoted)))
				line := models.PurchaseOrderItem{
					OrderID:     order.ID,
					ProductID:   item.ProductID,
					ProductCode: item.ProductCode,
					Description: item.EntryName,
					Quantity:    item.QuantityQuoted,
					UnitPrice:   item.UnitPrice,
					Subtotal:    subtotal,
				}
				if err := tx.Create(&line).Error; err != nil {
					return err
				}
				total = total.Add(subtotal)
				ordered++
			}
			if ordered == 0 {
				return fmt.Errorf("the response has no line items linked to catalog products")
			}
			if err := tx.Model(&order).Update("total", total).Error; err != nil {
				return err
			}
			if err := tx.Model(&quotation).Updates(map[string]interface{}{
				"status":     models.QuotationStatusOrdered,
				"updated_at": time.Now(),
			}).Error; err != nil {
				return err
			}
			return tx.Model(&models.Requirement{}).
				Where("id = ?", quotation.RequirementID).
				Updates(map[string]interface{}{
					"status":     models.RequirementStatusOrdered,
					"updated_at": time.Now(),
				}).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create purchase order", "details": err.Error()})
			return
		}

		db.Preload("Supplier").Preload("Items.Product").First(&order, order.ID)
		c.JSON(http.StatusCreated, order)

		notifier.NotifyRole(models.RolePurchasing,
			"Orden de compra emitida",
			fmt.Sprintf("Se emitió la orden %s", order.Number),
			fmt.Sprintf("/purchase-orders/%d", order.ID))

		repository.SaveActivityLog(db, models.ActivityLog{
			EventContext: "PurchaseOrder",
			EventName:    "Create",
			Description:  "Issued purchase order " + order.Number,
			UserName:     order.IssuedBy,
		})
	}
}

// GetPurchaseOrders lists purchase orders, newest first.
// @Summary List purchase orders
// @Tags PurchaseOrders
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} models.PurchaseOrder
// @Router /api/purchase-orders [get]
func GetPurchaseOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Supplier").Order("id DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		var orders []models.PurchaseOrder
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchase orders", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetPurchaseOrder fetches one purchase order with its items.
// @Summary Get purchase order
// @Tags PurchaseOrders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.PurchaseOrder
// @Failure 404 {object} models.ErrorResponse
// @Router /api/purchase-orders/{id} [get]
func GetPurchaseOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var order models.PurchaseOrder
		if err := db.Preload("Supplier").Preload("Items.Product").First(&order, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdatePurchaseOrderStatus moves an order to received or cancelled.
// @Summary Update purchase order status
// @Tags PurchaseOrders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.PurchaseOrder
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/purchase-orders/{id}/status [put]
func UpdatePurchaseOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}
		if input.Status != models.PurchaseOrderStatusReceived && input.Status != models.PurchaseOrderStatusCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be received or cancelled"})
			return
		}

		var order models.PurchaseOrder
		if err := db.First(&order, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
			return
		}
		if order.Status != models.PurchaseOrderStatusIssued {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only issued orders can change status"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&order).Updates(map[string]interface{}{
				"status":     input.Status,
				"updated_at": time.Now(),
			}).Error; err != nil {
				return err
			}
			// Receiving an order brings the ordered quantities into stock.
			if input.Status != models.PurchaseOrderStatusReceived {
				return nil
			}
			var items []models.PurchaseOrderItem
			if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
				return err
			}
			for _, item := range items {
				if item.ProductID == nil {
					continue
				}
				if err := tx.Model(&models.Product{}).
					Where("id = ?", *item.ProductID).
					Updates(map[string]interface{}{
						"stock":      gorm.Expr("stock + ?", item.Quantity),
						"updated_at": time.Now(),
					}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order", "details": err.Error()})
			return
		}

		db.First(&order, order.ID)
		c.JSON(http.StatusOK, order)

		repository.SaveActivityLog(db, models.ActivityLog{
			EventContext: "PurchaseOrder",
			EventName:    "StatusChange",
			Description:  fmt.Sprintf("Order %s moved to %s", order.Number, input.Status),
		})
	}
}

// GeneratePurchaseOrderPDF renders a purchase order as a printable PDF.
// @Summary Generate purchase order PDF
// @Description Generate a PDF document for the purchase order, including a QR code with the order reference
// @Tags PurchaseOrders
// @Produce application/pdf
// @Param id path int true "Order ID"
// @Success 200 {file} file "PDF file"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/purchase-orders/{id}/pdf [get]
func GeneratePurchaseOrderPDF(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var order models.PurchaseOrder
		if err := db.Preload("Supplier").Preload("Items.Product").First(&order, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
			return
		}

		qrCodeBytes, _ := generateOrderQRCode(map[string]interface{}{
			"order_id": order.ID,
			"number":   order.Number,
			"total":    order.Total.String(),
		})

		// Generate PDF
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)

		// Header
		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(140, 10, "Orden de Compra")
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(140, 8, order.Number)
		pdf.Ln(10)

		pdf.SetFont("Arial", "", 10)
		if order.Supplier != nil {
			pdf.Cell(140, 6, "Proveedor: "+order.Supplier.BusinessName)
			pdf.Ln(6)
			if order.Supplier.PaymentTerms != "" {
				pdf.Cell(140, 6, "Condiciones de pago: "+order.Supplier.PaymentTerms)
				pdf.Ln(6)
			}
		}
		pdf.Cell(140, 6, "Fecha de emisión: "+order.CreatedAt.Format("2006-01-02"))
		pdf.Ln(6)
		if order.IssuedBy != "" {
			pdf.Cell(140, 6, "Emitida por: "+order.IssuedBy)
			pdf.Ln(6)
		}

		// QR code on the right side
		if qrCodeBytes != nil {
			imageName := fmt.Sprintf("qr_order_%d", order.ID)
			pdf.RegisterImageOptionsReader(imageName, gofpdf.ImageOptions{ImageType: "JPEG"}, bytes.NewReader(qrCodeBytes))
			pdf.ImageOptions(imageName, 165, 12, 30, 30, false, gofpdf.ImageOptions{ImageType: "JPEG"}, 0, "")
		}

		pdf.Ln(8)

		// Items table
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(41, 84, 144)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(30, 8, "Código", "1", 0, "L", true, 0, "")
		pdf.CellFormat(75, 8, "Descripción", "1", 0, "L", true, 0, "")
		pdf.CellFormat(20, 8, "Cantidad", "1", 0, "R", true, 0, "")
		pdf.CellFormat(30, 8, "Precio Unit.", "1", 0, "R", true, 0, "")
		pdf.CellFormat(35, 8, "Subtotal", "1", 1, "R", true, 0, "")

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, item := range order.Items {
			description := item.Description
			if item.Product != nil {
				description = item.Product.Name
			}
			if len(description) > 45 {
				description = description[:45]
			}
			pdf.CellFormat(30, 7, item.ProductCode, "1", 0, "L", false, 0, "")
			pdf.CellFormat(75, 7, description, "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 7, strconv.Itoa(item.Quantity), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 7, "S/. "+item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 7, "S/. "+item.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(155, 8, "Total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, "S/. "+order.Total.StringFixed(2), "1", 1, "R", false, 0, "")

		if order.Notes != "" {
			pdf.Ln(6)
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(190, 5, "Notas: "+order.Notes, "", "L", false)
		}

		// Footer
		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(190, 6, "Documento generado el "+time.Now().Format("2006-01-02 15:04:05"))

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orden_compra_%s.pdf", order.Number))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}

		repository.SaveActivityLog(db, models.ActivityLog{
			EventContext: "PurchaseOrder",
			EventName:    "PDF",
			Description:  "Generated PDF for order " + order.Number,
		})
	}
}
