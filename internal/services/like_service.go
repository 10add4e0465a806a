package services

import (
	"log"

	"atelier/internal/models"
	"atelier/internal/repositories"
)

// LikeService handles the per-customer like ledger.
type LikeService struct {
	likeRepo    repositories.LikeRepository
	productRepo repositories.ProductRepository
}

// NewLikeService creates a new LikeService.
func NewLikeService(likeRepo repositories.LikeRepository, productRepo repositories.ProductRepository) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		productRepo: productRepo,
	}
}

// AddLike records a like for the product. Calling it when the product is
// already liked is a no-op, so a client retrying after a network failure
// never corrupts the ledger.
func (s *LikeService) AddLike(customerID, productID string) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return err
	}
	return s.likeRepo.Add(&models.Like{
		CustomerID: customerID,
		ProductID:  productID,
	})
}

// RemoveLike deletes the like record for the pair.
func (s *LikeService) RemoveLike(customerID, productID string) error {
	return s.likeRepo.Remove(customerID, productID)
}

// ListLikedProducts returns a page of the products a customer has liked plus
// the total like count. A like whose product has since been removed from the
// catalog is skipped.
func (s *LikeService) ListLikedProducts(customerID string, page, size int) ([]models.Product, int64, error) {
	likes, total, err := s.likeRepo.List(customerID, page, size)
	if err != nil {
		return nil, 0, err
	}

	products := make([]models.Product, 0, len(likes))
	for _, like := range likes {
		product, err := s.productRepo.GetByID(like.ProductID)
		if err != nil {
			log.Printf("Skipping like for missing product %s: %v", like.ProductID, err)
			continue
		}
		products = append(products, *product)
	}
	return products, total, nil
}
