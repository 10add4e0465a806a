package handlers

import (
	"log"
	"strings"

	"atelier/internal/models"
	"atelier/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the catalog read routes on an authenticated router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/get-all-products-by-auth", h.HandleListProducts)
	router.Get("/get-product-by-id", h.HandleGetProduct)
}

// RegisterVendorRoutes registers the catalog write routes for vendors.
func (h *ProductHandler) RegisterVendorRoutes(router fiber.Router) {
	router.Post("/create-product", h.HandleCreateProduct)
	router.Put("/update-product", h.HandleUpdateProduct)
}

// HandleListProducts returns a page of products filtered by publish status.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	publishStatus := c.Query("publishStatus")

	products, total, err := h.catalogService.ListProducts(page, size, publishStatus)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"data":  products,
		"total": total,
		"page":  page,
	})
}

// HandleGetProduct returns a single product by the productId query parameter.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Query("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "productId is required",
		})
	}

	product, err := h.catalogService.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleCreateProduct saves a new product owned by the calling vendor.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.VendorID = currentUserID(c)

	if err := h.validate.Struct(product); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.catalogService.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"data":    product,
	})
}

// HandleUpdateProduct edits a product owned by the calling vendor.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if product.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "productId is required",
		})
	}
	product.VendorID = currentUserID(c)

	if err := h.validate.Struct(product); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.catalogService.UpdateProduct(currentUserID(c), &product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
				"error":   err.Error(),
			})
		}
		if strings.Contains(err.Error(), "does not belong") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Product belongs to another vendor",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"data":    product,
	})
}
