package handlers

import (
	"log"
	"strings"

	"atelier/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LikeHandler handles HTTP requests for the like ledger.
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// RegisterRoutes registers the like routes on an authenticated router.
func (h *LikeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/get-all-product-likes", h.HandleListLikes)
	router.Post("/add-product-likes/:productId", h.HandleAddLike)
	router.Delete("/delete-product-like/:productId", h.HandleRemoveLike)
}

// HandleListLikes returns a page of the customer's liked products.
func (h *LikeHandler) HandleListLikes(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	products, total, err := h.likeService.ListLikedProducts(currentUserID(c), page, size)
	if err != nil {
		log.Printf("Error listing likes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve likes",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"data":  products,
		"total": total,
		"page":  page,
	})
}

// HandleAddLike records a like. Repeating the call for an already-liked
// product succeeds without duplicating the record.
func (h *LikeHandler) HandleAddLike(c *fiber.Ctx) error {
	productID := c.Params("productId")

	if err := h.likeService.AddLike(currentUserID(c), productID); err != nil {
		log.Printf("Error adding like for product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add like",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product liked",
	})
}

// HandleRemoveLike deletes the like record.
func (h *LikeHandler) HandleRemoveLike(c *fiber.Ctx) error {
	productID := c.Params("productId")

	if err := h.likeService.RemoveLike(currentUserID(c), productID); err != nil {
		log.Printf("Error removing like for product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Like not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove like",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Like removed",
	})
}
