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

// CreateRequirement creates a requirement with its detail lines.
// @Summary Create requirement
// @Tags Requirements
// @Accept json
// @Produce json
// @Param body body models.CreateRequirementRequest true "Requirement data"
// @Success 201 {object} models.Requirement
// @Failure 400 {object} models.ErrorResponse
// @Router /api/requirements [post]
func CreateRequirement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateRequirementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input", "details": err.Error()})
			return
		}
		if len(req.Details) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A requirement needs at least one detail line"})
			return
		}

		requirement := models.Requirement{
			Title:       req.Title,
			Priority:    req.Priority,
			Status:      models.RequirementStatusPending,
			Notes:       req.Notes,
			RequestedBy: req.RequestedBy,
			NeededBy:    req.NeededBy,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if requirement.Priority == "" {
			requirement.Priority = "medium"
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&requirement).Error; err != nil {
				return err
			}
			for _, d := range req.Details {
				var product models.Product
				if err := tx.First(&product, d.ProductID).Error; err != nil {
					return err
				}
				detail := models.RequirementDetail{
					RequirementID: requirement.ID,
					ProductID:     d.ProductID,
					Quantity:      d.Quantity,
					Notes:         d.Notes,
				}
				if err := tx.Create(&detail).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create requirement", "details": err.Error()})
			return
		}

		db.Preload("Details.Product").First(&requirement, requirement.ID)
		c.JSON(http.StatusCreated, requirement)

		repository.SaveActivityLog(db, models.ActivityLog{
			EventContext: "Requirement",
			EventName:    "Create",
			Description:  "Created requirement " + requirement.Title,
			UserName:     requirement.RequestedBy,
		})
	}
}

// GetRequirements lists requirements, newest first.
// @Summary List requirements
// @Tags Requirements
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Requirement
// @Router /api/requirements [get]
func GetRequirements(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Details.Product").Order("id DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		var requirements []models.Requirement
		if err := query.Find(&requirements).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requirements", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, requirements)
	}
}

// GetRequirement fetches one requirement with its details.
// @Summary Get requirement
// @Tags Requirements
// @Produce json
// @Param id path int true "Requirement ID"
// @Success 200 {object} models.Requirement
// @Failure 404 {object} models.ErrorResponse
// @Router /api/requirements/{id} [get]
func GetRequirement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid requirement id"})
			return
		}
		var requirement models.Requirement
		if err := db.Preload("Details.Product").First(&requirement, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Requirement not found"})
			return
		}
		c.JSON(http.StatusOK, requirement)
	}
}

// DeleteRequirement soft-deletes a requirement that is still pending.
// @Summary Delete requirement
// @Tags Requirements
// @Produce json
// @Param id path int true "Requirement ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/requirements/{id} [delete]
func DeleteRequirement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid requirement id"})
			return
		}
		var requirement models.Requirement
		if err := db.First(&requirement, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Requirement not found"})
			return
		}
		if requirement.Status != models.RequirementStatusPending {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending requirements can be deleted"})
			return
		}
		if err := db.Delete(&requirement).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete requirement", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Requirement deleted successfully"})

		repository.SaveActivityLog(db, models.ActivityLog{
			EventContext: "Requirement",
			EventName:    "Delete",
			Description:  "Deleted requirement " + requirement.Title,
		})
	}
}
