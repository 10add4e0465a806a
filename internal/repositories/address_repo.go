package repositories

import "atelier/internal/models"

// AddressRepository defines the interface for address-book data access.
// Create must keep the single-default invariant per owner.
type AddressRepository interface {
	ListByOwner(ownerID string) ([]models.Address, error)
	GetByID(id string) (*models.Address, error)
	Create(address *models.Address) error
}
