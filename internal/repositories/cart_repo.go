package repositories

import "atelier/internal/models"

// CartRepository defines the interface for cart data access. Lines are keyed
// by (customerId, productId, color, sleeveType, measurementTag). SumTotal is
// computed over ALL lines regardless of pagination so the cart summary never
// undercounts a multi-page cart.
type CartRepository interface {
	List(customerID string, page, size int) ([]models.CartItem, int64, error)
	ListAll(customerID string) ([]models.CartItem, error)
	Find(customerID, productID string, v models.CartVariation) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id uint, quantity int) error
	Delete(id uint) error
	Clear(customerID string) error
	SumTotal(customerID string) (float64, error)
}
