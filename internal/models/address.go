package models

import "gorm.io/gorm"

// Address is a shipping address in a customer's address book.
// At most one address per owner is the default.
type Address struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OwnerID     string `json:"ownerId" gorm:"index;type:varchar(36)"`
	FirstName   string `json:"firstName" gorm:"type:varchar(100)" validate:"required"`
	LastName    string `json:"lastName" gorm:"type:varchar(100)" validate:"required"`
	Street      string `json:"street" gorm:"type:varchar(255)" validate:"required"`
	City        string `json:"city" gorm:"type:varchar(100)" validate:"required"`
	State       string `json:"state" gorm:"type:varchar(100)" validate:"required"`
	Country     string `json:"country" gorm:"type:varchar(100)" validate:"required"`
	PostalCode  string `json:"postalCode" gorm:"type:varchar(20)" validate:"required"`
	PhoneNumber string `json:"phoneNumber" gorm:"type:varchar(32)" validate:"required"`
	IsDefault   bool   `json:"isDefault"`
	gorm.Model
}
