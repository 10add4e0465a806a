package services_test

import (
	"fmt"
	"testing"

	"atelier/internal/models"
	"atelier/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMeasurementRepository is a mock implementation of repositories.MeasurementRepository
type MockMeasurementRepository struct {
	mock.Mock
}

func (m *MockMeasurementRepository) ListByOwner(ownerID string) ([]models.BodyMeasurement, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) GetByTag(ownerID, tag string) (*models.BodyMeasurement, error) {
	args := m.Called(ownerID, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) Create(bm *models.BodyMeasurement) error {
	args := m.Called(bm)
	return args.Error(0)
}

func (m *MockMeasurementRepository) Update(bm *models.BodyMeasurement) error {
	args := m.Called(bm)
	return args.Error(0)
}

func (m *MockMeasurementRepository) DeleteByTag(ownerID, tag string) error {
	args := m.Called(ownerID, tag)
	return args.Error(0)
}

func notFoundErr(tag string) error {
	return fmt.Errorf("measurement with tag %s not found", tag)
}

func TestMeasurementService_Create(t *testing.T) {
	mockRepo := new(MockMeasurementRepository)
	service := services.NewMeasurementService(mockRepo)

	profile := &models.BodyMeasurement{
		OwnerID: "cust-1",
		Tag:     "self",
		MeasurementValues: models.MeasurementValues{
			Neck: 38, Shoulder: 46, Chest: 100, Waist: 84,
		},
	}

	// Test successful creation
	mockRepo.On("GetByTag", "cust-1", "self").Return(nil, notFoundErr("self")).Once()
	mockRepo.On("Create", profile).Return(nil).Once()
	err := service.Create(profile)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test tag collision
	mockRepo.On("GetByTag", "cust-1", "self").Return(&models.BodyMeasurement{Tag: "self"}, nil).Once()
	err = service.Create(profile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "measurement tag 'self' already in use")
	mockRepo.AssertExpectations(t)
}

func TestMeasurementService_Update(t *testing.T) {
	mockRepo := new(MockMeasurementRepository)
	service := services.NewMeasurementService(mockRepo)

	stored := &models.BodyMeasurement{
		ID:      "bm-1",
		OwnerID: "cust-1",
		Tag:     "self",
		MeasurementValues: models.MeasurementValues{
			Neck: 38, Chest: 100,
		},
	}

	// Test in-place edit (same tag)
	mockRepo.On("GetByTag", "cust-1", "self").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.BodyMeasurement")).Return(nil).Once()

	updated, err := service.Update("cust-1", "self", &models.BodyMeasurement{
		Tag:               "self",
		IsDefault:         true,
		MeasurementValues: models.MeasurementValues{Neck: 39, Chest: 102},
	})
	assert.NoError(t, err)
	assert.Equal(t, "self", updated.Tag)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, 39.0, updated.Neck)
	mockRepo.AssertExpectations(t)

	// Test rename to a free tag
	mockRepo.On("GetByTag", "cust-1", "self").Return(stored, nil).Once()
	mockRepo.On("GetByTag", "cust-1", "wedding").Return(nil, notFoundErr("wedding")).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.BodyMeasurement")).Return(nil).Once()

	updated, err = service.Update("cust-1", "self", &models.BodyMeasurement{Tag: "wedding"})
	assert.NoError(t, err)
	assert.Equal(t, "wedding", updated.Tag)
	mockRepo.AssertExpectations(t)

	// Test rename collision with a sibling profile
	stored.Tag = "self"
	mockRepo.On("GetByTag", "cust-1", "self").Return(stored, nil).Once()
	mockRepo.On("GetByTag", "cust-1", "brother").Return(&models.BodyMeasurement{Tag: "brother"}, nil).Once()

	_, err = service.Update("cust-1", "self", &models.BodyMeasurement{Tag: "brother"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "measurement tag 'brother' already in use")
	mockRepo.AssertExpectations(t)

	// Test unknown tag
	mockRepo.On("GetByTag", "cust-1", "ghost").Return(nil, notFoundErr("ghost")).Once()
	_, err = service.Update("cust-1", "ghost", &models.BodyMeasurement{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestMeasurementService_Delete(t *testing.T) {
	mockRepo := new(MockMeasurementRepository)
	service := services.NewMeasurementService(mockRepo)

	mockRepo.On("DeleteByTag", "cust-1", "self").Return(nil).Once()
	assert.NoError(t, service.Delete("cust-1", "self"))
	mockRepo.AssertExpectations(t)

	mockRepo.On("DeleteByTag", "cust-1", "ghost").Return(notFoundErr("ghost")).Once()
	err := service.Delete("cust-1", "ghost")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}
