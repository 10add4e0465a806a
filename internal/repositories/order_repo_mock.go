package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"atelier/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.DateCreated.IsZero() {
		order.DateCreated = time.Now()
	}
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s not found", id)
	}
	return &order, nil
}

func matchesFilter(order models.Order, filter models.OrderFilter) bool {
	if filter.CustomerID != "" && order.CustomerID != filter.CustomerID {
		return false
	}
	if filter.VendorID != "" && order.VendorID != filter.VendorID {
		return false
	}
	if filter.OrderID != "" && order.ID != filter.OrderID {
		return false
	}
	if filter.ProductID != "" && order.ProductID != filter.ProductID {
		return false
	}
	if filter.ProductCategory != "" && order.ProductCategory != filter.ProductCategory {
		return false
	}
	if filter.Status != "" && order.Status != filter.Status {
		return false
	}
	return true
}

// List retrieves a page of orders matching the filter plus the total count.
func (r *MockOrderRepository) List(filter models.OrderFilter) ([]models.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Order, 0)
	for _, order := range r.orders {
		if matchesFilter(order, filter) {
			all = append(all, order)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DateCreated.After(all[j].DateCreated) })

	total := int64(len(all))
	start := filter.Page * filter.Size
	if start >= len(all) {
		return []models.Order{}, total, nil
	}
	end := start + filter.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// ListByPaymentRef returns every order created under one payment reference.
func (r *MockOrderRepository) ListByPaymentRef(ref string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.PaymentRef == ref {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s not found for status update", id)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// CountByStatus returns per-status counts scoped to the filter's customer/vendor.
func (r *MockOrderRepository) CountByStatus(filter models.OrderFilter) (map[models.OrderStatus]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scope := models.OrderFilter{CustomerID: filter.CustomerID, VendorID: filter.VendorID}
	counts := make(map[models.OrderStatus]int64)
	for _, order := range r.orders {
		if matchesFilter(order, scope) {
			counts[order.Status]++
		}
	}
	return counts, nil
}
