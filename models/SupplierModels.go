package models

import (
	"time"

	"gorm.io/gorm"
)

// Supplier represents a supplier with commercial data.
type Supplier struct {
	ID            uint           `gorm:"primaryKey;column:id" json:"id"`
	BusinessName  string         `gorm:"column:business_name;not null" json:"business_name"`
	TaxID         string         `gorm:"column:tax_id;uniqueIndex;not null" json:"tax_id"`
	ContactPerson string         `gorm:"column:contact_person" json:"contact_person"`
	Email         string         `gorm:"column:email" json:"email"`
	Phone         string         `gorm:"column:phone" json:"phone"`
	Address       string         `gorm:"column:address" json:"address"`
	PaymentTerms  string         `gorm:"column:payment_terms" json:"payment_terms"`
	Active        bool           `gorm:"column:active;default:true" json:"active"`
	CreatedAt     time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "suppliers"
}
