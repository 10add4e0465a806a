package repositories

import (
	"fmt"
	"sort"
	"sync"

	"atelier/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items  map[uint]models.CartItem
	nextID uint
	mu     sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items:  make(map[uint]models.CartItem),
		nextID: 1,
	}
}

// List returns a page of cart lines for a customer plus the total line count.
func (r *MockCartRepository) List(customerID string, page, size int) ([]models.CartItem, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.CustomerID == customerID {
			all = append(all, item)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	start := page * size
	if start >= len(all) {
		return []models.CartItem{}, total, nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// ListAll retrieves every cart line for a customer.
func (r *MockCartRepository) ListAll(customerID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.CustomerID == customerID {
			all = append(all, item)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

// Find looks up the line matching the full variation key.
func (r *MockCartRepository) Find(customerID, productID string, v models.CartVariation) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.CustomerID == customerID && item.ProductID == productID && item.CartVariation == v {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("cart item for product %s not found", productID)
}

// Create adds a new cart line.
func (r *MockCartRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
	}
	r.items[item.ID] = *item
	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (r *MockCartRepository) UpdateQuantity(id uint, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("cart item %d not found for quantity update", id)
	}
	item.Quantity = quantity
	r.items[id] = item
	return nil
}

// Delete removes a single cart line.
func (r *MockCartRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("cart item %d not found for deletion", id)
	}
	delete(r.items, id)
	return nil
}

// Clear removes every line in a customer's cart.
func (r *MockCartRepository) Clear(customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.CustomerID == customerID {
			delete(r.items, id)
		}
	}
	return nil
}

// SumTotal computes sum(quantity * unit_price) across all lines for a customer.
func (r *MockCartRepository) SumTotal(customerID string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, item := range r.items {
		if item.CustomerID == customerID {
			total += item.LineTotal()
		}
	}
	return total, nil
}
