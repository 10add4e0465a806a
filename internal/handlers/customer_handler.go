package handlers

import (
	"log"

	"atelier/internal/models"
	"atelier/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customer profiles.
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// RegisterRoutes registers the profile routes on an authenticated router.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/customer-details", h.HandleGetDetails)
	router.Put("/update-customer", h.HandleUpdate)
	router.Post("/update-customer-profile-image", h.HandleUpdateProfileImage)
}

// authedEmail resolves the email a profile request acts on. The emailAddress
// query parameter is accepted for compatibility but must match the
// authenticated account.
func authedEmail(c *fiber.Ctx) (string, bool) {
	tokenEmail, _ := c.Locals("email").(string)
	queryEmail := c.Query("emailAddress")
	if queryEmail != "" && queryEmail != tokenEmail {
		return "", false
	}
	return tokenEmail, tokenEmail != ""
}

// HandleGetDetails returns the authenticated account's profile.
func (h *CustomerHandler) HandleGetDetails(c *fiber.Ctx) error {
	email, ok := authedEmail(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Cannot access another account's profile",
		})
	}

	user, err := h.customerService.GetByEmail(email)
	if err != nil {
		log.Printf("Error getting customer details: %v", err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Customer not found",
			"error":   err.Error(),
		})
	}

	// For security, do not return the password hash
	user.Password = ""
	return c.JSON(fiber.Map{"data": user})
}

// HandleUpdate applies profile edits to the authenticated account.
func (h *CustomerHandler) HandleUpdate(c *fiber.Ctx) error {
	email, ok := authedEmail(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Cannot update another account's profile",
		})
	}

	var updates models.User
	if err := c.BodyParser(&updates); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.customerService.UpdateProfile(email, &updates)
	if err != nil {
		log.Printf("Error updating profile for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
			"error":   err.Error(),
		})
	}

	user.Password = ""
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// HandleUpdateProfileImage stores a new profile image. The image arrives as
// a data URL in the profileImage query parameter.
func (h *CustomerHandler) HandleUpdateProfileImage(c *fiber.Ctx) error {
	email, ok := authedEmail(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Cannot update another account's profile",
		})
	}

	profileImage := c.Query("profileImage")
	if profileImage == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "profileImage is required",
		})
	}

	user, err := h.customerService.UpdateProfileImage(email, profileImage)
	if err != nil {
		log.Printf("Error updating profile image for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile image",
			"error":   err.Error(),
		})
	}

	user.Password = ""
	return c.JSON(fiber.Map{
		"message": "Profile image updated successfully",
		"data":    user,
	})
}
