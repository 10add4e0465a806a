package repositories

import (
	"fmt"

	"atelier/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAddressRepository is a GORM implementation of AddressRepository.
type GORMAddressRepository struct {
	db *gorm.DB
}

// NewGORMAddressRepository creates a new instance of GORMAddressRepository.
func NewGORMAddressRepository(db *gorm.DB) *GORMAddressRepository {
	return &GORMAddressRepository{
		db: db,
	}
}

// ListByOwner retrieves all addresses belonging to an owner.
func (r *GORMAddressRepository) ListByOwner(ownerID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at asc").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses for owner %s: %w", ownerID, err)
	}
	return addresses, nil
}

// GetByID retrieves a single address by its ID.
func (r *GORMAddressRepository) GetByID(id string) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("address with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get address by ID %s: %w", id, err)
	}
	return &address, nil
}

// Create creates a new address. When the address is flagged default, the
// previous default is cleared in the same transaction.
func (r *GORMAddressRepository) Create(address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("owner_id = ? AND is_default = ?", address.OwnerID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}
