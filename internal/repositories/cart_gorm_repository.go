package repositories

import (
	"fmt"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// List retrieves a page of cart lines for a customer plus the total line count.
func (r *GORMCartRepository) List(customerID string, page, size int) ([]models.CartItem, int64, error) {
	query := r.db.Model(&models.CartItem{}).Where("customer_id = ?", customerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cart items: %w", err)
	}

	var items []models.CartItem
	if err := query.Order("created_at asc").
		Offset(page * size).Limit(size).
		Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, total, nil
}

// ListAll retrieves every cart line for a customer; checkout snapshots the
// whole cart, not a page.
func (r *GORMCartRepository) ListAll(customerID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("customer_id = ?", customerID).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

// Find looks up the line matching the full variation key.
func (r *GORMCartRepository) Find(customerID, productID string, v models.CartVariation) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item,
		"customer_id = ? AND product_id = ? AND color = ? AND sleeve_type = ? AND measurement_tag = ?",
		customerID, productID, v.Color, v.SleeveType, v.MeasurementTag).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cart item for product %s not found", productID)
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}
	return &item, nil
}

// Create adds a new cart line.
func (r *GORMCartRepository) Create(item *models.CartItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (r *GORMCartRepository) UpdateQuantity(id uint, quantity int) error {
	res := r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %d not found for quantity update", id)
	}
	return nil
}

// Delete removes a single cart line.
func (r *GORMCartRepository) Delete(id uint) error {
	res := r.db.Delete(&models.CartItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %d not found for deletion", id)
	}
	return nil
}

// Clear removes every line in a customer's cart.
func (r *GORMCartRepository) Clear(customerID string) error {
	if err := r.db.Where("customer_id = ?", customerID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// SumTotal computes sum(quantity * unit_price) across all of a customer's
// lines in the database, independent of any page the client is viewing.
func (r *GORMCartRepository) SumTotal(customerID string) (float64, error) {
	var total float64
	err := r.db.Model(&models.CartItem{}).
		Where("customer_id = ?", customerID).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum cart total: %w", err)
	}
	return total, nil
}
