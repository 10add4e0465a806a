package repositories

import "atelier/internal/models"

// MeasurementRepository defines the interface for body-measurement data
// access. Create and Update must keep the single-default invariant: saving a
// profile with IsDefault set clears the flag on all siblings atomically.
type MeasurementRepository interface {
	ListByOwner(ownerID string) ([]models.BodyMeasurement, error)
	GetByTag(ownerID, tag string) (*models.BodyMeasurement, error)
	Create(m *models.BodyMeasurement) error
	Update(m *models.BodyMeasurement) error
	DeleteByTag(ownerID, tag string) error
}
