package repositories

import "atelier/internal/models"

// ProductRepository defines the interface for product data access. List is
// paginated and optionally filtered by publish status; it returns the total
// row count alongside the page.
type ProductRepository interface {
	List(page, size int, publishStatus string) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
