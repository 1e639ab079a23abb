package models

import (
	"time"

	"gorm.io/gorm"
)

// Requirement statuses follow the procurement workflow: a requirement is
// drafted, sent out for quotation, and finally covered by a purchase order.
const (
	RequirementStatusPending = "pending"
	RequirementStatusQuoted  = "quoted"
	RequirementStatusOrdered = "ordered"
	RequirementStatusClosed  = "closed"
)

// Requirement is an internal purchase requirement: the list of products an
// area asks procurement to source, with the quantities it needs.
type Requirement struct {
	ID          uint                `gorm:"primaryKey;column:id" json:"id"`
	Title       string              `gorm:"column:title;not null" json:"title"`
	Priority    string              `gorm:"column:priority;default:'medium'" json:"priority"`
	Status      string              `gorm:"column:status;not null;default:'pending'" json:"status"`
	Notes       string              `gorm:"column:notes" json:"notes"`
	RequestedBy string              `gorm:"column:requested_by" json:"requested_by"`
	NeededBy    *time.Time          `gorm:"column:needed_by" json:"needed_by,omitempty"`
	Details     []RequirementDetail `gorm:"foreignKey:RequirementID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	CreatedAt   time.Time           `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`
}

// TableName specifies the table name for Requirement
func (Requirement) TableName() string {
	return "requirements"
}

// RequirementDetail is one requested product line within a requirement.
type RequirementDetail struct {
	ID            uint     `gorm:"primaryKey;column:id" json:"id"`
	RequirementID uint     `gorm:"column:requirement_id;not null;index" json:"requirement_id"`
	ProductID     uint     `gorm:"column:product_id;not null" json:"product_id"`
	Product       *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity      int      `gorm:"column:quantity;not null" json:"quantity"`
	Notes         string   `gorm:"column:notes" json:"notes"`
}

// TableName specifies the table name for RequirementDetail
func (RequirementDetail) TableName() string {
	return "requirement_details"
}
