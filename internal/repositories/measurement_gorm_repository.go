package repositories

import (
	"fmt"

	"atelier/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMeasurementRepository is a GORM implementation of MeasurementRepository.
type GORMMeasurementRepository struct {
	db *gorm.DB
}

// NewGORMMeasurementRepository creates a new instance of GORMMeasurementRepository.
func NewGORMMeasurementRepository(db *gorm.DB) *GORMMeasurementRepository {
	return &GORMMeasurementRepository{
		db: db,
	}
}

// ListByOwner retrieves all measurement profiles belonging to an owner.
func (r *GORMMeasurementRepository) ListByOwner(ownerID string) ([]models.BodyMeasurement, error) {
	var profiles []models.BodyMeasurement
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at asc").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list measurements for owner %s: %w", ownerID, err)
	}
	return profiles, nil
}

// GetByTag retrieves a single profile by its owner-scoped tag.
func (r *GORMMeasurementRepository) GetByTag(ownerID, tag string) (*models.BodyMeasurement, error) {
	var profile models.BodyMeasurement
	if err := r.db.First(&profile, "owner_id = ? AND tag = ?", ownerID, tag).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("measurement with tag %s not found", tag)
		}
		return nil, fmt.Errorf("failed to get measurement by tag %s: %w", tag, err)
	}
	return &profile, nil
}

// Create creates a new profile. When the profile is flagged default, the
// previous default is cleared in the same transaction.
func (r *GORMMeasurementRepository) Create(m *models.BodyMeasurement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if m.IsDefault {
			if err := tx.Model(&models.BodyMeasurement{}).
				Where("owner_id = ? AND is_default = ?", m.OwnerID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create measurement: %w", err)
	}
	return nil
}

// Update updates an existing profile, keeping the single-default invariant.
func (r *GORMMeasurementRepository) Update(m *models.BodyMeasurement) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if m.IsDefault {
			if err := tx.Model(&models.BodyMeasurement{}).
				Where("owner_id = ? AND id <> ? AND is_default = ?", m.OwnerID, m.ID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		res := tx.Save(m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("measurement with ID %s not found for update", m.ID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update measurement: %w", err)
	}
	return nil
}

// DeleteByTag deletes a profile by its owner-scoped tag. Open cart lines may
// still reference the tag; orders snapshot measurements by value so nothing
// downstream is invalidated.
func (r *GORMMeasurementRepository) DeleteByTag(ownerID, tag string) error {
	res := r.db.Where("owner_id = ? AND tag = ?", ownerID, tag).Delete(&models.BodyMeasurement{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete measurement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("measurement with tag %s not found for deletion", tag)
	}
	return nil
}
