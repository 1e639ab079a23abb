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

// CreateProduct creates a catalog product.
// @Summary Create product
// @Description Creates a new catalog product. Code must be unique (case-insensitive).
// @Tags Products
// @Accept json
// @Produce json
// @Param body body models.Product true "Product data"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products [post]
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}

		catalog := repository.NewProductRepository(db)
		if existing, err := catalog.FindByCode(product.Code); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check product code", "details": err.Error()})
			return
		} else if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A product with this code already exists"})
			return
		}

		product.CreatedAt = time.Now()
		product.UpdatedAt = time.Now()
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert product", "details": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, product)

		repository.SaveActivityLog(db, models.ActivityLog{
			EventContext: "Product",
			EventName:    "Create",
			Description:  "Created product " + product.Code,
		})
	}
}

// GetProducts lists catalog products.
// @Summary List products
// @Tags Products
// @Produce json
// @Param active query bool false "Only active products"
// @Success 200 {array} models.Product
// @Router /api/products [get]
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Category").Order("code")
		if c.Query("active") == "true" {
			query = query.Where("active")
		}
		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProduct fetches one product by id.
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// UpdateProduct updates a product by id.
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param body body models.Product true "Product data"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [put]
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input models.Product
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.CategoryID = input.CategoryID
		product.Unit = input.Unit
		product.ReferencePrice = input.ReferencePrice
		product.Stock = input.Stock
		product.MinStock = input.MinStock
		product.Active = input.Active
		product.UpdatedAt = time.Now()

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, product)

		repository.SaveActivityLog(db, models.ActivityLog{
			EventContext: "Product",
			EventName:    "Update",
			Description:  "Updated product " + product.Code,
		})
	}
}

// DeleteProduct soft-deletes a product.
// @Summary Delete product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [delete]
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})

		repository.SaveActivityLog(db, models.ActivityLog{
			EventContext: "Product",
			EventName:    "Delete",
			Description:  "Deleted product " + product.Code,
		})
	}
}
