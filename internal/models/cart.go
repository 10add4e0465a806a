package models

import "gorm.io/gorm"

// CartVariation is the variation part of a cart line key. Two additions with
// different measurement tags stay distinct lines even for the same product,
// color and sleeve, so one cart can hold the same garment cut for two bodies.
type CartVariation struct {
	Color          string `json:"color" gorm:"type:varchar(32)" validate:"required"`
	SleeveType     string `json:"sleeveType" gorm:"type:varchar(32)" validate:"required"`
	MeasurementTag string `json:"measurementTag" gorm:"type:varchar(100)" validate:"required"`
}

// CartItem is one line in a customer's cart, keyed by
// (productId, color, sleeveType, measurementTag). Quantity never drops
// below 1; decrementing a quantity-1 line removes it instead.
type CartItem struct {
	ID            uint    `json:"-" gorm:"primaryKey"`
	CustomerID    string  `json:"customerId" gorm:"index;type:varchar(36)"`
	ProductID     string  `json:"productId" gorm:"index;type:varchar(36)"`
	ProductName   string  `json:"productName" gorm:"type:varchar(100)"`
	ProductImage  string  `json:"productImage" gorm:"type:text"`
	VendorID      string  `json:"vendorId" gorm:"type:varchar(36)"`
	Category      string  `json:"category" gorm:"type:varchar(100)"`
	CartVariation `gorm:"embedded"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"` // price captured when the line was created
	gorm.Model    `json:"-"`
}

// LineTotal is the derived per-line amount; it is never stored.
func (i CartItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
