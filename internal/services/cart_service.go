package services

import (
	"fmt"

	"atelier/internal/models"
	"atelier/internal/repositories"
)

// CartService handles business logic for the cart aggregate. Lines are keyed
// by (productId, color, sleeveType, measurementTag): two additions that
// differ only in measurement tag stay distinct lines, so a buyer can order
// the same garment cut to two different bodies in one cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddLine creates a new line at quantity 1, or increments the existing line
// matching the full variation key. The unit price is captured from the
// product at line-creation time.
func (s *CartService) AddLine(customerID, productID string, v models.CartVariation) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product.OutOfStock {
		return fmt.Errorf("product %s is out of stock", product.Name)
	}

	existing, err := s.cartRepo.Find(customerID, productID, v)
	if err == nil && existing != nil {
		return s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity+1)
	}

	return s.cartRepo.Create(&models.CartItem{
		CustomerID:    customerID,
		ProductID:     product.ID,
		ProductName:   product.Name,
		ProductImage:  product.ProductImage,
		VendorID:      product.VendorID,
		Category:      product.Category,
		CartVariation: v,
		Quantity:      1,
		UnitPrice:     product.Price,
	})
}

// DecrementLine lowers the line's quantity by one. Decrementing a
// quantity-1 line removes it; quantity never reaches 0 or below.
func (s *CartService) DecrementLine(customerID, productID string, v models.CartVariation) error {
	item, err := s.cartRepo.Find(customerID, productID, v)
	if err != nil {
		return err
	}

	if item.Quantity <= 1 {
		return s.cartRepo.Delete(item.ID)
	}
	return s.cartRepo.UpdateQuantity(item.ID, item.Quantity-1)
}

// RemoveLine deletes the line regardless of its quantity.
func (s *CartService) RemoveLine(customerID, productID string, v models.CartVariation) error {
	item, err := s.cartRepo.Find(customerID, productID, v)
	if err != nil {
		return err
	}
	return s.cartRepo.Delete(item.ID)
}

// ClearCart removes every line in the customer's cart.
func (s *CartService) ClearCart(customerID string) error {
	return s.cartRepo.Clear(customerID)
}

// GetCart retrieves a page of the customer's cart lines plus the total count.
func (s *CartService) GetCart(customerID string, page, size int) ([]models.CartItem, int64, error) {
	return s.cartRepo.List(customerID, page, size)
}

// GetSummary returns the total across ALL cart lines. It is computed
// server-side independent of pagination so a multi-page cart is never
// undercounted.
func (s *CartService) GetSummary(customerID string) (float64, error) {
	return s.cartRepo.SumTotal(customerID)
}
