package services

import (
	"fmt"

	"atelier/internal/models"
	"atelier/internal/repositories"
)

// CustomerService handles business logic for customer profiles.
type CustomerService struct {
	userRepo repositories.UserRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(userRepo repositories.UserRepository) *CustomerService {
	return &CustomerService{
		userRepo: userRepo,
	}
}

// GetByEmail retrieves a customer profile by email.
func (s *CustomerService) GetByEmail(email string) (*models.User, error) {
	return s.userRepo.GetByEmail(email)
}

// UpdateProfile applies profile edits to the account found by email. Email,
// password and role are not editable through this path.
func (s *CustomerService) UpdateProfile(email string, updates *models.User) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	if updates.FirstName != "" {
		user.FirstName = updates.FirstName
	}
	if updates.LastName != "" {
		user.LastName = updates.LastName
	}
	if updates.PhoneNumber != "" {
		user.PhoneNumber = updates.PhoneNumber
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// UpdateProfileImage stores a new data-URL profile image on the account.
func (s *CustomerService) UpdateProfileImage(email, profileImage string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	user.ProfileImage = profileImage
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile image: %w", err)
	}
	return user, nil
}
