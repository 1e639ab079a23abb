package handlers

import (
	"net/http"
	"strconv"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/BryanRF/full-version-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetNotifications lists notifications for a user, newest first.
// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Param user_id query int true "User ID"
// @Param status query string false "Filter by status (unread, read)"
// @Success 200 {array} models.Notification
// @Router /api/notifications [get]
func GetNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Query("user_id"))
		if err != nil {
			utils.ErrorResponse(c, "user_id query parameter is required", http.StatusBadRequest)
			return
		}
		query := db.Where("user_id = ?", userID).Order("id DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		var notifications []models.Notification
		if err := query.Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

// MarkNotificationRead marks a single notification as read.
// @Summary Mark notification read
// @Tags Notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /api/notifications/{id}/read [put]
func MarkNotificationRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.ErrorResponse(c, "invalid notification id", http.StatusBadRequest)
			return
		}
		var notification models.Notification
		if err := db.First(&notification, id).Error; err != nil {
			utils.ErrorResponse(c, "Notification not found", http.StatusNotFound)
			return
		}
		if err := db.Model(&notification).Update("status", "read").Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification", "details": err.Error()})
			return
		}
		utils.SuccessResponse(c, "Notification marked as read", http.StatusOK)
	}
}

// MarkAllNotificationsRead marks every unread notification for a user as read.
// @Summary Mark all notifications read
// @Tags Notifications
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/notifications/read-all [put]
func MarkAllNotificationsRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Query("user_id"))
		if err != nil {
			utils.ErrorResponse(c, "user_id query parameter is required", http.StatusBadRequest)
			return
		}
		result := db.Model(&models.Notification{}).
			Where("user_id = ? AND status = ?", userID, "unread").
			Update("status", "read")
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications", "details": result.Error.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notifications marked as read", "updated": result.RowsAffected})
	}
}
