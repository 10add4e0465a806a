package handlers

import (
	"log"
	"strings"

	"atelier/internal/models"
	"atelier/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for the address book, payment
// initialization and the gateway webhook.
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	validate        *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the checkout routes on an authenticated router.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/addresses", h.HandleListAddresses)
	router.Post("/addresses", h.HandleCreateAddress)
	router.Post("/initialize-payment", h.HandleInitializePayment)
}

// RegisterPublicRoutes registers the gateway-facing webhook, which the
// gateway calls without a user token.
func (h *CheckoutHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/payment-webhook", h.HandleWebhook)
}

// HandleListAddresses returns the customer's address book.
func (h *CheckoutHandler) HandleListAddresses(c *fiber.Ctx) error {
	addresses, err := h.checkoutService.ListAddresses(currentUserID(c))
	if err != nil {
		log.Printf("Error listing addresses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve addresses",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": addresses})
}

// HandleCreateAddress saves a new shipping address. Missing required fields
// fail validation here, before checkout touches the payment gateway.
func (h *CheckoutHandler) HandleCreateAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		log.Printf("Error parsing address body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	address.OwnerID = currentUserID(c)

	if err := h.validate.Struct(address); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.checkoutService.CreateAddress(&address); err != nil {
		log.Printf("Error creating address: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create address",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Address created successfully",
		"data":    address,
	})
}

// HandleInitializePayment starts a gateway transaction for the customer's
// cart and returns the hosted authorization URL to redirect the buyer to.
func (h *CheckoutHandler) HandleInitializePayment(c *fiber.Ctx) error {
	var req models.PaymentInitializationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment initialization body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	result, err := h.checkoutService.InitializePayment(currentUserID(c), req)
	if err != nil {
		log.Printf("Error initializing payment: %v", err)
		switch {
		case strings.Contains(err.Error(), "not found"):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Address not found",
				"error":   err.Error(),
			})
		case strings.Contains(err.Error(), "cart is empty"),
			strings.Contains(err.Error(), "unknown shipping method"):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Payment initialization failed",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Payment initialization failed",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Payment initialized",
		"data":    result,
	})
}

// HandleWebhook applies the gateway's asynchronous payment confirmation.
func (h *CheckoutHandler) HandleWebhook(c *fiber.Ctx) error {
	var event models.PaymentWebhookEvent
	if err := c.BodyParser(&event); err != nil {
		log.Printf("Error parsing webhook body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(event); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.checkoutService.HandleWebhook(event); err != nil {
		log.Printf("Error handling payment webhook %s: %v", event.Reference, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not process webhook",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Webhook processed",
	})
}
