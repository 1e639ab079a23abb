package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a sales customer (person or company).
type Customer struct {
	ID           uint           `gorm:"primaryKey;column:id" json:"id"`
	Name         string         `gorm:"column:name;not null" json:"name"`
	DocumentType string         `gorm:"column:document_type;default:'DNI'" json:"document_type"`
	DocumentNo   string         `gorm:"column:document_no;uniqueIndex;not null" json:"document_no"`
	Email        string         `gorm:"column:email" json:"email"`
	Phone        string         `gorm:"column:phone" json:"phone"`
	Address      string         `gorm:"column:address" json:"address"`
	Active       bool           `gorm:"column:active;default:true" json:"active"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
