package services

import (
	"fmt"
	"log"

	"atelier/internal/models"
	"atelier/internal/repositories"
	"atelier/pkg/rabbitmq"
)

// OrderService handles order queries for customers and vendors and the
// vendor-driven status state machine.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// ListOrders retrieves a page of orders matching the filter plus the total.
func (s *OrderService) ListOrders(filter models.OrderFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// AdvanceStatus moves a vendor's order one step forward along the fixed
// transition table. PROCESSING is excluded: the payment-gateway webhook owns
// that transition, not the vendor. Any non-advanceable state is a logged
// no-op and the order is returned unchanged.
func (s *OrderService) AdvanceStatus(orderID, vendorID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.VendorID != vendorID {
		return nil, fmt.Errorf("order with ID %s not found", orderID)
	}

	if order.Status == models.StatusProcessing {
		log.Printf("Order %s awaits payment confirmation; vendor advance is a no-op", orderID)
		return order, nil
	}

	next, ok := models.NextStatus(order.Status)
	if !ok {
		log.Printf("Order %s in state %s is not advanceable; no-op", orderID, order.Status)
		return order, nil
	}

	if err := s.orderRepo.UpdateStatus(orderID, next); err != nil {
		return nil, err
	}
	order.Status = next

	if s.mqClient != nil {
		event := rabbitmq.Event{
			Type:       "order.status_updated",
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			VendorID:   order.VendorID,
			Status:     string(next),
		}
		if err := s.mqClient.PublishEvent(event); err != nil {
			log.Printf("Warning: Failed to publish status update event for order %s: %v", order.ID, err)
		}
	}
	return order, nil
}

// RejectOrder moves an order into the terminal REJECTED state. Rejection is
// only reachable before the vendor starts processing.
func (s *OrderService) RejectOrder(orderID, vendorID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.VendorID != vendorID {
		return nil, fmt.Errorf("order with ID %s not found", orderID)
	}

	if order.Status != models.StatusProcessing && order.Status != models.StatusPaymentCompleted {
		return nil, fmt.Errorf("order in state %s cannot be rejected", order.Status)
	}

	if err := s.orderRepo.UpdateStatus(orderID, models.StatusRejected); err != nil {
		return nil, err
	}
	order.Status = models.StatusRejected

	if s.mqClient != nil {
		event := rabbitmq.Event{
			Type:       "order.status_updated",
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			VendorID:   order.VendorID,
			Status:     string(models.StatusRejected),
		}
		if err := s.mqClient.PublishEvent(event); err != nil {
			log.Printf("Warning: Failed to publish status update event for order %s: %v", order.ID, err)
		}
	}
	return order, nil
}

// Statistics aggregates per-status bucket counts for the dashboard tiles.
// Orders in the two vendor-processing states count toward the total but have
// no bucket of their own; REJECTED reports through the cancelled bucket.
func (s *OrderService) Statistics(filter models.OrderFilter) (*models.OrderStatistics, error) {
	counts, err := s.orderRepo.CountByStatus(filter)
	if err != nil {
		return nil, err
	}

	stats := &models.OrderStatistics{
		ProcessingOrdersCount: counts[models.StatusProcessing],
		CancelledOrdersCount:  counts[models.StatusRejected],
		FailedOrdersCount:     counts[models.StatusFailed],
		CompletedOrdersCount:  counts[models.StatusCompleted],
		InTransitOrdersCount:  counts[models.StatusInTransit],
		PaymentCompletedCount: counts[models.StatusPaymentCompleted],
	}
	for _, count := range counts {
		stats.AllOrdersCount += count
	}
	return stats, nil
}
