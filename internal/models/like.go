package models

import "gorm.io/gorm"

// Like is a set-membership record marking a product a customer has liked.
// Adding an existing pair is a no-op, so the ledger is safe against repeated
// optimistic adds from the client.
type Like struct {
	ID         uint   `json:"-" gorm:"primaryKey"`
	CustomerID string `json:"customerId" gorm:"index:idx_customer_product,unique;type:varchar(36)"`
	ProductID  string `json:"productId" gorm:"index:idx_customer_product,unique;type:varchar(36)"`
	gorm.Model `json:"-"`
}
