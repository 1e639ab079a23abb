package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/BryanRF/full-version-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Uploaded response files larger than this are rejected before parsing.
const maxResponseFileSize = 10 << 20

// CreateQuotations sends a requirement out for quotation.
// @Summary Create quotations
// @Description Creates one quotation request per supplier for a requirement.
// @Tags Quotations
// @Accept json
// @Produce json
// @Param body body models.CreateQuotationRequest true "Requirement and suppliers"
// @Success 201 {array} models.Quotation
// @Failure 400 {object} models.ErrorResponse
// @Router /api/quotations [post]
func CreateQuotations(db *gorm.DB, notifier services.NotificationPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateQuotationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}

		var requirement models.Requirement
		if err := db.First(&requirement, req.RequirementID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Requirement not found"})
			return
		}

		var created []models.Quotation
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, supplierID := range req.SupplierIDs {
				var supplier models.Supplier
				if err := tx.First(&supplier, supplierID).Error; err != nil {
					return fmt.Errorf("supplier %d not found", supplierID)
				}
				quotation := models.Quotation{
					RequirementID: req.RequirementID,
					SupplierID:    supplierID,
					Status:        models.QuotationStatusSent,
					SentAt:        time.Now(),
					DueDate:       req.DueDate,
					CreatedAt:     time.Now(),
					UpdatedAt:     time.Now(),
				}
				if err := tx.Create(&quotation).Error; err != nil {
					return err
				}
				created = append(created, quotation)
			}
			return tx.Model(&models.Requirement{}).
				Where("id = ?", req.RequirementID).
				Update("status", models.RequirementStatusQuoted).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create quotations", "details": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)

		notifier.NotifyRole(models.RolePurchasing,
			"Requerimiento enviado a cotizar",
			fmt.Sprintf("El requerimiento '%s' fue enviado a %d proveedores", requirement.Title, len(created)),
			fmt.Sprintf("/requirements/%d", requirement.ID))
	}
}

// GetQuotations lists quotations, optionally filtered by requirement.
// @Summary List quotations
// @Tags Quotations
// @Produce json
// @Param requirement_id query int false "Filter by requirement"
// @Success 200 {array} models.Quotation
// @Router /api/quotations [get]
func GetQuotations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Supplier").Order("id DESC")
		if rid := c.Query("requirement_id"); rid != "" {
			query = query.Where("requirement_id = ?", rid)
		}
		var quotations []models.Quotation
		if err := query.Find(&quotations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quotations", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, quotations)
	}
}

// DownloadQuotationTemplate builds the Excel template a supplier fills in.
// @Summary Download quotation template
// @Description Generates the 9-column response template pre-filled with the requested products.
// @Tags Quotations
// @Param id path int true "Quotation ID"
// @Success 200 "Excel file"
// @Failure 404 {object} models.ErrorResponse
// @Router /api/quotations/{id}/template [get]
func DownloadQuotationTemplate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quotation id"})
			return
		}

		var quotation models.Quotation
		if err := db.Preload("Requirement.Details.Product.Category").First(&quotation, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
			return
		}

		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)

		for i, header := range services.TemplateHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, header)
		}

		headerStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		})
		endCell, _ := excelize.CoordinatesToCellName(services.TemplateColumnCount, 1)
		f.SetCellStyle(sheet, "A1", endCell, headerStyle)

		if quotation.Requirement != nil {
			for i, detail := range quotation.Requirement.Details {
				rowNum := i + 2
				if detail.Product == nil {
					continue
				}
				category := ""
				if detail.Product.CategoryID != nil && detail.Product.Category != nil {
					category = detail.Product.Category.Name
				}
				f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), detail.Product.Code)
				f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), detail.Product.Name)
				f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), category)
				f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), detail.Quantity)
				f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), detail.Product.Unit)
			}
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=cotizacion_%d.xlsx", quotation.ID))
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file", "details": err.Error()})
			return
		}
	}
}

// UploadQuotationResponse ingests a supplier's filled response file.
// @Summary Upload quotation response
// @Description Validates and processes the supplier's Excel response. A new upload fully replaces any previous response for the same quotation.
// @Tags Quotations
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Quotation ID"
// @Param file formData file true "Response file (.xlsx or .xls)"
// @Success 200 {object} models.IngestionResult
// @Failure 400 {object} models.ValidationOutcome
// @Failure 422 {object} models.IngestionResult
// @Router /api/quotations/{id}/response [post]
func UploadQuotationResponse(db *gorm.DB, ingest *services.QuotationIngestService, comparison *services.ComparisonService, notifier services.NotificationPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quotation id"})
			return
		}

		var quotation models.Quotation
		if err := db.Preload("Supplier").Preload("Requirement").First(&quotation, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file not found"})
			return
		}
		if file.Size > maxResponseFileSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El archivo supera el tamaño máximo permitido (10 MB)"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to open file"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to read file"})
			return
		}

		result, validation := ingest.Ingest(c.Request.Context(), quotation.ID, file.Filename, data)
		if result == nil {
			c.JSON(http.StatusBadRequest, validation)
			return
		}
		if !result.Success {
			c.JSON(http.StatusUnprocessableEntity, result)
			return
		}

		c.JSON(http.StatusOK, result)

		supplierName := ""
		if quotation.Supplier != nil {
			supplierName = quotation.Supplier.BusinessName
		}
		notifier.NotifyRole(models.RolePurchasing,
			"Respuesta de cotización procesada",
			fmt.Sprintf("Se procesó automáticamente la respuesta de %s (%d de %d ítems)",
				supplierName, result.ProcessedItems, result.TotalItems),
			fmt.Sprintf("/quotations/%d", quotation.ID))

		if count, err := comparison.ResponseCount(quotation.RequirementID); err == nil && count >= 2 {
			notifier.NotifyRole(models.RolePurchasing,
				"Comparación de cotizaciones disponible",
				fmt.Sprintf("Ya existen %d respuestas para el requerimiento; puede compararlas", count),
				fmt.Sprintf("/requirements/%d/comparison", quotation.RequirementID))
		}
	}
}

// GetQuotationResponse returns the processed response for a quotation.
// @Summary Get quotation response
// @Tags Quotations
// @Produce json
// @Param id path int true "Quotation ID"
// @Success 200 {object} models.QuotationResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/quotations/{id}/response [get]
func GetQuotationResponse(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quotation id"})
			return
		}
		var response models.QuotationResponse
		err = db.Preload("Items.Product").Where("quotation_id = ?", id).First(&response).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No response found for this quotation"})
			return
		}
		c.JSON(http.StatusOK, response)
	}
}

// GetProcessingLogs lists the ingestion audit trail for a quotation.
// @Summary List processing logs
// @Tags Quotations
// @Produce json
// @Param id path int true "Quotation ID"
// @Success 200 {array} models.ProcessingLog
// @Router /api/quotations/{id}/processing-logs [get]
func GetProcessingLogs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quotation id"})
			return
		}
		var logs []models.ProcessingLog
		if err := db.Where("quotation_id = ?", id).Order("id DESC").Find(&logs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch processing logs", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}
