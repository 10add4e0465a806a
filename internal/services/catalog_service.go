package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"atelier/internal/models"
	"atelier/internal/repositories"
	"atelier/pkg/cache"
)

// CatalogService handles business logic for the product catalog. Product
// detail reads go through a Redis read-through cache; listing always hits
// the database because pages are cheap and publish filters vary.
type CatalogService struct {
	repo  repositories.ProductRepository
	cache *cache.Cache
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository, productCache *cache.Cache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: productCache,
	}
}

func productCacheKey(id string) string {
	return "product:" + id
}

// ListProducts retrieves a page of products filtered by publish status.
func (s *CatalogService) ListProducts(page, size int, publishStatus string) ([]models.Product, int64, error) {
	return s.repo.List(page, size, publishStatus)
}

// GetProductByID retrieves a single product, serving from cache when possible.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	ctx := context.Background()

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, productCacheKey(id)); err == nil {
			var product models.Product
			if err := json.Unmarshal(data, &product); err == nil {
				return &product, nil
			}
			log.Printf("Warning: Failed to decode cached product %s: %v", id, err)
		}
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, productCacheKey(id), product); err != nil {
			log.Printf("Warning: Failed to cache product %s: %v", id, err)
		}
	}
	return product, nil
}

// CreateProduct saves a new product for a vendor.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	if len(product.Variations) == 0 {
		return fmt.Errorf("product must offer at least one variation")
	}
	return s.repo.Create(product)
}

// UpdateProduct edits an existing product. The vendor must own it. The
// cached copy is dropped so the next read sees the edit.
func (s *CatalogService) UpdateProduct(vendorID string, product *models.Product) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing.VendorID != vendorID {
		return fmt.Errorf("product with ID %s does not belong to vendor", product.ID)
	}

	product.VendorID = existing.VendorID
	if err := s.repo.Update(product); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Delete(context.Background(), productCacheKey(product.ID)); err != nil {
			log.Printf("Warning: Failed to invalidate cached product %s: %v", product.ID, err)
		}
	}
	return nil
}
