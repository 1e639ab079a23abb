package models

import (
	"time"
)

// Role names used for notification fan-out targeting.
const (
	RoleAdmin      = "admin"
	RolePurchasing = "purchasing"
	RoleSales      = "sales"
)

// Role is a notification fan-out target group.
type Role struct {
	RoleID   int    `gorm:"primaryKey;column:role_id" json:"role_id"`
	RoleName string `gorm:"column:role_name;uniqueIndex;not null" json:"role_name"`
}

// TableName specifies the table name for Role
func (Role) TableName() string {
	return "roles"
}

// User is a back-office user. Users exist here as notification recipients;
// authentication is handled outside this service.
type User struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Email     string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	FirstName string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;not null" json:"last_name"`
	RoleID    int       `gorm:"column:role_id;not null" json:"role_id"`
	Active    bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Notification is one in-app notification for one user.
type Notification struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Message   string    `gorm:"column:message;not null" json:"message"`
	Status    string    `gorm:"column:status;not null;default:'unread'" json:"status"`
	Action    string    `gorm:"column:action" json:"action"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
