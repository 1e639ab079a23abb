package handlers

import (
	"net/http"
	"strconv"

	"github.com/BryanRF/full-version-sub000/services"
	"github.com/gin-gonic/gin"
)

// CompareResponses ranks supplier offers per product for a requirement.
// @Summary Compare quotation responses
// @Description Returns the per-product price ranking across every response received for the requirement. Requires at least two responses.
// @Tags Comparison
// @Produce json
// @Param id path int true "Requirement ID"
// @Success 200 {array} models.ComparisonRow
// @Failure 400 {object} models.ErrorResponse
// @Router /api/requirements/{id}/comparison [get]
func CompareResponses(comparison *services.ComparisonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid requirement id"})
			return
		}

		count, err := comparison.ResponseCount(uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count responses", "details": err.Error()})
			return
		}
		if count < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least two responses are required for comparison", "responses": count})
			return
		}

		rows, err := comparison.Compare(uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build comparison", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
