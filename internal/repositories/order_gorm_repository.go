package repositories

import (
	"fmt"
	"time"

	"atelier/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create adds a new order.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.DateCreated.IsZero() {
		order.DateCreated = time.Now()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID returns an order by its ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

func applyOrderFilter(query *gorm.DB, filter models.OrderFilter) *gorm.DB {
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.VendorID != "" {
		query = query.Where("vendor_id = ?", filter.VendorID)
	}
	if filter.OrderID != "" {
		query = query.Where("id = ?", filter.OrderID)
	}
	if filter.ProductID != "" {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.ProductCategory != "" {
		query = query.Where("product_category = ?", filter.ProductCategory)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return query
}

// List retrieves a page of orders matching the filter plus the total count.
func (r *GORMOrderRepository) List(filter models.OrderFilter) ([]models.Order, int64, error) {
	query := applyOrderFilter(r.db.Model(&models.Order{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []models.Order
	if err := query.Order("date_created desc").
		Offset(filter.Page * filter.Size).Limit(filter.Size).
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

// ListByPaymentRef returns every order created under one payment reference.
func (r *GORMOrderRepository) ListByPaymentRef(ref string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("payment_ref = ?", ref).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders by payment ref: %w", err)
	}
	return orders, nil
}

// UpdateStatus updates the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s not found for status update", id)
	}
	return nil
}

// CountByStatus returns per-status counts for orders matching the filter's
// customer/vendor scope. Status, pagination and ID filters are ignored here;
// the buckets always cover the whole queue.
func (r *GORMOrderRepository) CountByStatus(filter models.OrderFilter) (map[models.OrderStatus]int64, error) {
	scope := models.OrderFilter{CustomerID: filter.CustomerID, VendorID: filter.VendorID}
	query := applyOrderFilter(r.db.Model(&models.Order{}), scope)

	var rows []struct {
		Status models.OrderStatus
		Count  int64
	}
	if err := query.Select("status, COUNT(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	counts := make(map[models.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
