package handlers

import (
	"log"
	"strings"

	"atelier/internal/models"
	"atelier/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for customer order history and the
// vendor order queue.
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterCustomerRoutes registers the customer-facing order routes.
func (h *OrderHandler) RegisterCustomerRoutes(router fiber.Router) {
	router.Get("/fetch-customer-orders", h.HandleFetchCustomerOrders)
	router.Get("/order-stats-for-customer", h.HandleCustomerStats)
}

// RegisterVendorRoutes registers the vendor order-queue routes.
func (h *OrderHandler) RegisterVendorRoutes(router fiber.Router) {
	router.Get("/fetch-vendor-orders", h.HandleFetchVendorOrders)
	router.Get("/order-stats-for-vendor", h.HandleVendorStats)
	router.Get("/get-order-by-orderId", h.HandleGetOrderByID)
	router.Put("/update-order-status/:orderId", h.HandleAdvanceStatus)
	router.Put("/reject-order/:orderId", h.HandleRejectOrder)
}

// parseOrderFilter reads the shared listing filters; the caller pins the
// customer or vendor scope afterwards.
func parseOrderFilter(c *fiber.Ctx) models.OrderFilter {
	return models.OrderFilter{
		OrderID:         c.Query("orderId"),
		ProductID:       c.Query("productId"),
		ProductCategory: c.Query("productCategory"),
		Status:          models.OrderStatus(c.Query("status")),
		Page:            c.QueryInt("page", 0),
		Size:            c.QueryInt("size", 10),
	}
}

// HandleFetchCustomerOrders returns a page of the customer's orders.
func (h *OrderHandler) HandleFetchCustomerOrders(c *fiber.Ctx) error {
	filter := parseOrderFilter(c)
	filter.CustomerID = currentUserID(c)

	orders, total, err := h.orderService.ListOrders(filter)
	if err != nil {
		log.Printf("Error listing customer orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"data":  orders,
		"total": total,
		"page":  filter.Page,
	})
}

// HandleCustomerStats returns the customer's per-status order counts.
func (h *OrderHandler) HandleCustomerStats(c *fiber.Ctx) error {
	stats, err := h.orderService.Statistics(models.OrderFilter{CustomerID: currentUserID(c)})
	if err != nil {
		log.Printf("Error getting customer order stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order statistics",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": stats})
}

// HandleFetchVendorOrders returns a page of the vendor's order queue.
func (h *OrderHandler) HandleFetchVendorOrders(c *fiber.Ctx) error {
	filter := parseOrderFilter(c)
	filter.VendorID = currentUserID(c)

	orders, total, err := h.orderService.ListOrders(filter)
	if err != nil {
		log.Printf("Error listing vendor orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"data":  orders,
		"total": total,
		"page":  filter.Page,
	})
}

// HandleVendorStats returns the vendor's per-status order counts for the
// dashboard tiles.
func (h *OrderHandler) HandleVendorStats(c *fiber.Ctx) error {
	stats, err := h.orderService.Statistics(models.OrderFilter{VendorID: currentUserID(c)})
	if err != nil {
		log.Printf("Error getting vendor order stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order statistics",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": stats})
}

// HandleGetOrderByID returns a single order by the orderId query parameter.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Query("orderId")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "orderId is required",
		})
	}

	order, err := h.orderService.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order %s: %v", orderID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": order})
}

// HandleAdvanceStatus moves an order one step along the fixed transition
// table. The next state is computed from the current state server-side; the
// orderStatus query parameter is accepted for compatibility and only logged
// when it disagrees with the table.
func (h *OrderHandler) HandleAdvanceStatus(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	order, err := h.orderService.AdvanceStatus(orderID, currentUserID(c))
	if err != nil {
		log.Printf("Error advancing order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}

	if requested := c.Query("orderStatus"); requested != "" && requested != string(order.Status) {
		log.Printf("Requested status %s for order %s differs from computed %s", requested, orderID, order.Status)
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated",
		"data":    order,
	})
}

// HandleRejectOrder moves an order into the terminal REJECTED state.
func (h *OrderHandler) HandleRejectOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	order, err := h.orderService.RejectOrder(orderID, currentUserID(c))
	if err != nil {
		log.Printf("Error rejecting order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
				"error":   err.Error(),
			})
		}
		if strings.Contains(err.Error(), "cannot be rejected") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Order cannot be rejected",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not reject order",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Order rejected",
		"data":    order,
	})
}
