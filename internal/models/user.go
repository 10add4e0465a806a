package models

import "gorm.io/gorm"

// Roles assigned to an account at signup. Vendors are the tailors
// fulfilling orders; customers are the buyers.
const (
	RoleCustomer = "CUSTOMER"
	RoleVendor   = "VENDOR"
	RoleAdmin    = "ADMIN"
)

// User represents a customer or vendor account on the platform.
type User struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName    string `json:"firstName" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	LastName     string `json:"lastName" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email        string `json:"emailAddress" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password     string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	PhoneNumber  string `json:"phoneNumber" gorm:"type:varchar(32)"`
	Role         string `json:"role" gorm:"type:varchar(16);default:CUSTOMER" validate:"omitempty,oneof=CUSTOMER VENDOR ADMIN"`
	ProfileImage string `json:"profileImage" gorm:"type:text"` // data-URL image from the account page
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
