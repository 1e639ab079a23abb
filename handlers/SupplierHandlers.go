package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/BryanRF/full-version-sub000/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateSupplier creates a new supplier.
// @Summary Create supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param body body models.Supplier true "Supplier data"
// @Success 201 {object} models.Supplier
// @Failure 400 {object} models.ErrorResponse
// @Router /api/suppliers [post]
func CreateSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var supplier models.Supplier
		if err := c.ShouldBindJSON(&supplier); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}
		supplier.CreatedAt = time.Now()
		supplier.UpdatedAt = time.Now()
		if err := db.Create(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert supplier", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, supplier)

		repository.SaveActivityLog(db, models.ActivityLog{
			EventContext: "Supplier",
			EventName:    "Create",
			Description:  "Created supplier " + supplier.BusinessName,
		})
	}
}

// GetSuppliers lists suppliers.
// @Summary List suppliers
// @Tags Suppliers
// @Produce json
// @Param active query bool false "Only active suppliers"
// @Success 200 {array} models.Supplier
// @Router /api/suppliers [get]
func GetSuppliers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("business_name")
		if c.Query("active") == "true" {
			query = query.Where("active")
		}
		var suppliers []models.Supplier
		if err := query.Find(&suppliers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suppliers", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, suppliers)
	}
}

// UpdateSupplier updates a supplier by id.
// @Summary Update supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param body body models.Supplier true "Supplier data"
// @Success 200 {object} models.Supplier
// @Failure 404 {object} models.ErrorResponse
// @Router /api/suppliers/{id} [put]
func UpdateSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier id"})
			return
		}
		var supplier models.Supplier
		if err := db.First(&supplier, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}

		var input models.Supplier
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}

		supplier.BusinessName = input.BusinessName
		supplier.ContactPerson = input.ContactPerson
		supplier.Email = input.Email
		supplier.Phone = input.Phone
		supplier.Address = input.Address
		supplier.PaymentTerms = input.PaymentTerms
		supplier.Active = input.Active
		supplier.UpdatedAt = time.Now()

		if err := db.Save(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, supplier)
	}
}

// DeleteSupplier soft-deletes a supplier.
// @Summary Delete supplier
// @Tags Suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /api/suppliers/{id} [delete]
func DeleteSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier id"})
			return
		}
		var supplier models.Supplier
		if err := db.First(&supplier, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		if err := db.Delete(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
	}
}
