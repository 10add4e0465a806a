package models

import "gorm.io/gorm"

// Publish statuses a product moves through before customers can see it.
const (
	PublishStatusDraft     = "DRAFT"
	PublishStatusPublished = "PUBLISHED"
)

// Product represents a garment design offered by a vendor.
type Product struct {
	ID               string             `json:"productId" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	VendorID         string             `json:"vendorId" gorm:"index;type:varchar(36)" validate:"required"`
	Name             string             `json:"name" validate:"required,min=3,max=100"`
	Code             string             `json:"code" gorm:"type:varchar(64)"`
	Category         string             `json:"category" gorm:"type:varchar(100)" validate:"required"`
	Price            float64            `json:"price" validate:"required,gt=0"`
	Currency         string             `json:"currency" gorm:"type:varchar(8);default:NGN"`
	PublishStatus    string             `json:"publishStatus" gorm:"index;type:varchar(16);default:DRAFT" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	OutOfStock       bool               `json:"outOfStock"`
	ProductImage     string             `json:"productImage" gorm:"type:text"`
	ShortDescription string             `json:"shortDescription" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	LongDescription  string             `json:"longDescription" gorm:"type:text"`
	MaterialUsed     string             `json:"materialUsed" gorm:"type:varchar(255)"`
	ReadyIn          string             `json:"readyIn" gorm:"type:varchar(64)"` // e.g. "5 Working Days"
	Variations       []ProductVariation `json:"productVariation" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	gorm.Model
}

// ProductVariation is one (color, sleeveType) combination a garment is
// offered in. The distinct colors and sleeve types across variations drive
// the selector UI; they are a derived projection, not stored separately.
type ProductVariation struct {
	ID         uint   `json:"-" gorm:"primaryKey"`
	ProductID  string `json:"-" gorm:"index;type:varchar(36)"`
	Color      string `json:"color" gorm:"type:varchar(32)" validate:"required"`
	SleeveType string `json:"sleeveType" gorm:"type:varchar(32)" validate:"required"`
}
