package repositories

import "atelier/internal/models"

// LikeRepository defines the interface for the per-customer like ledger.
// Add is idempotent: adding an already-liked product is a no-op.
type LikeRepository interface {
	Add(like *models.Like) error
	Remove(customerID, productID string) error
	List(customerID string, page, size int) ([]models.Like, int64, error)
}
