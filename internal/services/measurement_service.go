package services

import (
	"fmt"

	"atelier/internal/models"
	"atelier/internal/repositories"
)

// MeasurementService handles business logic for body-measurement profiles.
type MeasurementService struct {
	repo repositories.MeasurementRepository
}

// NewMeasurementService creates a new MeasurementService.
func NewMeasurementService(repo repositories.MeasurementRepository) *MeasurementService {
	return &MeasurementService{
		repo: repo,
	}
}

// ListByOwner retrieves all measurement profiles for an owner.
func (s *MeasurementService) ListByOwner(ownerID string) ([]models.BodyMeasurement, error) {
	return s.repo.ListByOwner(ownerID)
}

// Create saves a new profile. The tag must not collide with an existing
// profile of the same owner; the repository clears any previous default when
// this one is flagged default.
func (s *MeasurementService) Create(m *models.BodyMeasurement) error {
	if existing, err := s.repo.GetByTag(m.OwnerID, m.Tag); err == nil && existing != nil {
		return fmt.Errorf("measurement tag '%s' already in use", m.Tag)
	}
	return s.repo.Create(m)
}

// Update edits the profile currently stored under the given tag. Renaming to
// a tag held by a sibling profile is rejected.
func (s *MeasurementService) Update(ownerID, tag string, m *models.BodyMeasurement) (*models.BodyMeasurement, error) {
	existing, err := s.repo.GetByTag(ownerID, tag)
	if err != nil {
		return nil, err
	}

	if m.Tag != "" && m.Tag != tag {
		if collision, err := s.repo.GetByTag(ownerID, m.Tag); err == nil && collision != nil {
			return nil, fmt.Errorf("measurement tag '%s' already in use", m.Tag)
		}
		existing.Tag = m.Tag
	}
	existing.IsDefault = m.IsDefault
	existing.MeasurementValues = m.MeasurementValues

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the profile stored under the tag. Cart lines referencing
// the tag stay valid; orders snapshot measurements by value.
func (s *MeasurementService) Delete(ownerID, tag string) error {
	return s.repo.DeleteByTag(ownerID, tag)
}
