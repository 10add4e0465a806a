package repositories

import (
	"fmt"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// GORMLikeRepository is a GORM implementation of LikeRepository.
type GORMLikeRepository struct {
	db *gorm.DB
}

// NewGORMLikeRepository creates a new instance of GORMLikeRepository.
func NewGORMLikeRepository(db *gorm.DB) *GORMLikeRepository {
	return &GORMLikeRepository{
		db: db,
	}
}

// Add records a like. FirstOrCreate makes repeated adds for the same pair a
// no-op, so optimistic retries from the client never duplicate the record.
func (r *GORMLikeRepository) Add(like *models.Like) error {
	err := r.db.Where("customer_id = ? AND product_id = ?", like.CustomerID, like.ProductID).
		FirstOrCreate(like).Error
	if err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

// Remove deletes the like record for the pair.
func (r *GORMLikeRepository) Remove(customerID, productID string) error {
	res := r.db.Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&models.Like{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove like: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("like for product %s not found", productID)
	}
	return nil
}

// List retrieves a page of a customer's likes plus the total count.
func (r *GORMLikeRepository) List(customerID string, page, size int) ([]models.Like, int64, error) {
	query := r.db.Model(&models.Like{}).Where("customer_id = ?", customerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	var likes []models.Like
	if err := query.Order("created_at desc").
		Offset(page * size).Limit(size).
		Find(&likes).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list likes: %w", err)
	}
	return likes, total, nil
}
