package services

import (
	"log"
	"time"

	"github.com/BryanRF/full-version-sub000/models"
	"gorm.io/gorm"
)

// NotificationPort is the fan-out dependency handlers notify through. The
// ingestion pipeline itself never touches it; notifying is a caller-side
// concern. Delivery beyond the notifications table (push, email) is out of
// scope here.
type NotificationPort interface {
	NotifyUser(userID uint, title, message, action string)
	NotifyRole(roleName, title, message, action string)
}

// NotificationService is the database-backed NotificationPort: one
// notifications row per recipient.
type NotificationService struct {
	db *gorm.DB
}

// NewNotificationService creates the DB-backed notification sink.
func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotifyUser stores one notification for one user. Failures are logged and
// swallowed; notifications are fire-and-forget.
func (s *NotificationService) NotifyUser(userID uint, title, message, action string) {
	notification := models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Status:    "unread",
		Action:    action,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("failed to insert notification for user %d: %v", userID, err)
	}
}

// NotifyRole fans one notification out to every active user holding the
// given role.
func (s *NotificationService) NotifyRole(roleName, title, message, action string) {
	var userIDs []uint
	err := s.db.Model(&models.User{}).
		Joins("JOIN roles ON roles.role_id = users.role_id").
		Where("roles.role_name = ? AND users.active", roleName).
		Pluck("users.id", &userIDs).Error
	if err != nil {
		log.Printf("failed to fetch users with role %s for notification: %v", roleName, err)
		return
	}

	for _, userID := range userIDs {
		s.NotifyUser(userID, title, message, action)
	}
}
