package repository

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/BryanRF/full-version-sub000/models"
	"gorm.io/gorm"
)

// GenerateDocumentNumber builds a document number like "OC-2026-48291" for
// purchase orders ("OC") and sales ("VT").
func GenerateDocumentNumber(prefix string) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("%s-%d-%05d", prefix, time.Now().Year(), rng.Intn(90000)+10000)
}

// SaveActivityLog records one audit-trail entry. Logging failures never
// abort the operation being logged.
func SaveActivityLog(db *gorm.DB, entry models.ActivityLog) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("failed to save activity log (%s/%s): %v", entry.EventContext, entry.EventName, err)
	}
}

// CleanupOldRecords removes notifications and processing logs older than
// the retention window. Invoked from the cron scheduler.
func CleanupOldRecords(db *gorm.DB, retention time.Duration) {
	threshold := time.Now().Add(-retention)
	if err := db.Where("created_at < ? AND status = ?", threshold, "read").
		Delete(&models.Notification{}).Error; err != nil {
		log.Printf("failed to clean up notifications: %v", err)
	}
	if err := db.Where("created_at < ?", threshold).
		Delete(&models.ProcessingLog{}).Error; err != nil {
		log.Printf("failed to clean up processing logs: %v", err)
	}
}
