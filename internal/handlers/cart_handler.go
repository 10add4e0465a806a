package handlers

import (
	"log"
	"strings"

	"atelier/internal/models"
	"atelier/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the cart aggregate.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes on an authenticated router.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/get-cart", h.HandleGetCart)
	router.Get("/sum-amount-by-quantity-by-customerId", h.HandleGetSummary)
	router.Post("/add-product-cart-with-variation", h.HandleAddLine)
	router.Put("/delete-product-cart", h.HandleDecrementLine)
	router.Delete("/remove-all-product-from-cart", h.HandleRemoveLine)
	router.Put("/clear-cart", h.HandleClearCart)
}

// parseVariation reads the variation key common to all cart mutations: the
// productId query parameter plus the {color, sleeveType, measurementTag}
// body. It writes the error response itself and reports ok=false.
func (h *CartHandler) parseVariation(c *fiber.Ctx) (string, models.CartVariation, bool) {
	productID := c.Query("productId")
	if productID == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "productId is required",
		})
		return "", models.CartVariation{}, false
	}

	var v models.CartVariation
	if err := c.BodyParser(&v); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return "", models.CartVariation{}, false
	}
	if err := h.validate.Struct(v); err != nil {
		_ = validationErrorResponse(c, err)
		return "", models.CartVariation{}, false
	}
	return productID, v, true
}

// HandleGetCart returns a page of the customer's cart lines.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	items, total, err := h.cartService.GetCart(currentUserID(c), page, size)
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"data":  items,
		"total": total,
		"page":  page,
	})
}

// HandleGetSummary returns the total across all cart lines, regardless of
// how the cart listing is paginated.
func (h *CartHandler) HandleGetSummary(c *fiber.Ctx) error {
	total, err := h.cartService.GetSummary(currentUserID(c))
	if err != nil {
		log.Printf("Error getting cart summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart summary",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"total": total})
}

// HandleAddLine creates or increments the line for the variation key.
func (h *CartHandler) HandleAddLine(c *fiber.Ctx) error {
	productID, v, ok := h.parseVariation(c)
	if !ok {
		return nil
	}

	if err := h.cartService.AddLine(currentUserID(c), productID, v); err != nil {
		log.Printf("Error adding cart line for product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
				"error":   err.Error(),
			})
		}
		if strings.Contains(err.Error(), "out of stock") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Product is out of stock",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added to cart",
	})
}

// HandleDecrementLine lowers the line's quantity by one, removing the line
// when it was at quantity 1.
func (h *CartHandler) HandleDecrementLine(c *fiber.Ctx) error {
	productID, v, ok := h.parseVariation(c)
	if !ok {
		return nil
	}

	if err := h.cartService.DecrementLine(currentUserID(c), productID, v); err != nil {
		log.Printf("Error decrementing cart line for product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart item not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart updated",
	})
}

// HandleRemoveLine deletes the line regardless of its quantity.
func (h *CartHandler) HandleRemoveLine(c *fiber.Ctx) error {
	productID, v, ok := h.parseVariation(c)
	if !ok {
		return nil
	}

	if err := h.cartService.RemoveLine(currentUserID(c), productID, v); err != nil {
		log.Printf("Error removing cart line for product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart item not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove from cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product removed from cart",
	})
}

// HandleClearCart removes every line in the customer's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.cartService.ClearCart(currentUserID(c)); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
