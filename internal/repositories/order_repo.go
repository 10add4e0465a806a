package repositories

import "atelier/internal/models"

// OrderRepository defines the interface for order data access. Orders are
// never hard-deleted; UpdateStatus is the only mutation after creation.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	List(filter models.OrderFilter) ([]models.Order, int64, error)
	ListByPaymentRef(ref string) ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
	CountByStatus(filter models.OrderFilter) (map[models.OrderStatus]int64, error)
}
