package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateCustomer creates a new customer.
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param body body models.Customer true "Customer data"
// @Success 201 {object} models.Customer
// @Failure 400 {object} models.ErrorResponse
// @Router /api/customers [post]
func CreateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customer models.Customer
		if err := c.ShouldBindJSON(&customer); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}
		customer.CreatedAt = time.Now()
		customer.UpdatedAt = time.Now()
		if err := db.Create(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert customer", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, customer)
	}
}

// GetCustomers lists customers.
// @Summary List customers
// @Tags Customers
// @Produce json
// @Success 200 {array} models.Customer
// @Router /api/customers [get]
func GetCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customers []models.Customer
		if err := db.Order("name").Find(&customers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

// UpdateCustomer updates a customer by id.
// @Summary Update customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param body body models.Customer true "Customer data"
// @Success 200 {object} models.Customer
// @Failure 404 {object} models.ErrorResponse
// @Router /api/customers/{id} [put]
func UpdateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		var customer models.Customer
		if err := db.First(&customer, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		var input models.Customer
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}

		customer.Name = input.Name
		customer.DocumentType = input.DocumentType
		customer.DocumentNo = input.DocumentNo
		customer.Email = input.Email
		customer.Phone = input.Phone
		customer.Address = input.Address
		customer.Active = input.Active
		customer.UpdatedAt = time.Now()

		if err := db.Save(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// DeleteCustomer soft-deletes a customer.
// @Summary Delete customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /api/customers/{id} [delete]
func DeleteCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		var customer models.Customer
		if err := db.First(&customer, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		if err := db.Delete(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
	}
}
