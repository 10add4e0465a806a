package handlers

import (
	"log"
	"strings"

	"atelier/internal/models"
	"atelier/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MeasurementHandler handles HTTP requests for body-measurement profiles.
type MeasurementHandler struct {
	measurementService *services.MeasurementService
	validate           *validator.Validate
}

// NewMeasurementHandler creates a new MeasurementHandler.
func NewMeasurementHandler(measurementService *services.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{
		measurementService: measurementService,
		validate:           validator.New(),
	}
}

// RegisterRoutes registers the measurement routes on an authenticated router.
func (h *MeasurementHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/get-body-measurement-by-user", h.HandleList)
	router.Post("/create-body-measurement", h.HandleCreate)
	router.Put("/update-body-measurement", h.HandleUpdate)
	router.Delete("/delete-body-measurement", h.HandleDelete)
}

// currentUserID returns the authenticated account ID set by the JWT middleware.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// HandleList returns every measurement profile of the authenticated customer.
func (h *MeasurementHandler) HandleList(c *fiber.Ctx) error {
	profiles, err := h.measurementService.ListByOwner(currentUserID(c))
	if err != nil {
		log.Printf("Error listing measurements: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve measurements",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": profiles})
}

// HandleCreate saves a new measurement profile.
func (h *MeasurementHandler) HandleCreate(c *fiber.Ctx) error {
	var profile models.BodyMeasurement
	if err := c.BodyParser(&profile); err != nil {
		log.Printf("Error parsing measurement body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	profile.OwnerID = currentUserID(c)

	if err := h.validate.Struct(profile); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.measurementService.Create(&profile); err != nil {
		log.Printf("Error creating measurement: %v", err)
		if strings.Contains(err.Error(), "already in use") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Measurement creation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create measurement",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Measurement created successfully",
		"data":    profile,
	})
}

// HandleUpdate edits the profile addressed by the tag query parameter (or
// the tag in the body when the parameter is absent).
func (h *MeasurementHandler) HandleUpdate(c *fiber.Ctx) error {
	var profile models.BodyMeasurement
	if err := c.BodyParser(&profile); err != nil {
		log.Printf("Error parsing measurement body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	tag := c.Query("tag")
	if tag == "" {
		tag = profile.Tag
	}
	if tag == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "tag is required",
		})
	}

	// The update replaces the stored values wholesale, so the replacement
	// must satisfy the same constraints as a fresh profile
	if profile.Tag == "" {
		profile.Tag = tag
	}
	if err := h.validate.Struct(profile); err != nil {
		return validationErrorResponse(c, err)
	}

	updated, err := h.measurementService.Update(currentUserID(c), tag, &profile)
	if err != nil {
		log.Printf("Error updating measurement %s: %v", tag, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Measurement not found",
				"error":   err.Error(),
			})
		}
		if strings.Contains(err.Error(), "already in use") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Measurement update failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update measurement",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Measurement updated successfully",
		"data":    updated,
	})
}

// HandleDelete removes the profile addressed by the tag query parameter.
func (h *MeasurementHandler) HandleDelete(c *fiber.Ctx) error {
	tag := c.Query("tag")
	if tag == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "tag is required",
		})
	}

	if err := h.measurementService.Delete(currentUserID(c), tag); err != nil {
		log.Printf("Error deleting measurement %s: %v", tag, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Measurement not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete measurement",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Measurement deleted successfully",
	})
}
