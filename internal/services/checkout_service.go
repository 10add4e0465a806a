package services

import (
	"fmt"
	"log"
	"strings"

	"atelier/internal/models"
	"atelier/internal/repositories"
	"atelier/pkg/paygate"
	"atelier/pkg/rabbitmq"

	"github.com/google/uuid"
)

// PaymentGateway is the slice of the gateway client checkout depends on.
type PaymentGateway interface {
	Initialize(req paygate.InitializeRequest) (*paygate.InitializeResponse, error)
}

// ShippingRates maps shipping methods to flat rates. The values come from
// configuration so the platform, not the client, owns pricing.
type ShippingRates struct {
	Standard float64
	Express  float64
}

// Rate returns the flat rate for a shipping method.
func (r ShippingRates) Rate(method string) (float64, error) {
	switch method {
	case models.ShippingStandard:
		return r.Standard, nil
	case models.ShippingExpress:
		return r.Express, nil
	default:
		return 0, fmt.Errorf("unknown shipping method: %s", method)
	}
}

// CheckoutService orchestrates the address book, payment initialization and
// the payment-gateway webhook. Orders are only recorded once the gateway
// accepts the transaction; a gateway failure leaves nothing behind.
type CheckoutService struct {
	cartRepo        repositories.CartRepository
	addressRepo     repositories.AddressRepository
	orderRepo       repositories.OrderRepository
	measurementRepo repositories.MeasurementRepository
	userRepo        repositories.UserRepository
	gateway         PaymentGateway
	rates           ShippingRates
	mqClient        *rabbitmq.Client
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	cartRepo repositories.CartRepository,
	addressRepo repositories.AddressRepository,
	orderRepo repositories.OrderRepository,
	measurementRepo repositories.MeasurementRepository,
	userRepo repositories.UserRepository,
	gateway PaymentGateway,
	rates ShippingRates,
	mqClient *rabbitmq.Client,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:        cartRepo,
		addressRepo:     addressRepo,
		orderRepo:       orderRepo,
		measurementRepo: measurementRepo,
		userRepo:        userRepo,
		gateway:         gateway,
		rates:           rates,
		mqClient:        mqClient,
	}
}

// ListAddresses retrieves the customer's address book.
func (s *CheckoutService) ListAddresses(ownerID string) ([]models.Address, error) {
	return s.addressRepo.ListByOwner(ownerID)
}

// CreateAddress saves a new shipping address. Flagging it default clears the
// previous default atomically.
func (s *CheckoutService) CreateAddress(address *models.Address) error {
	return s.addressRepo.Create(address)
}

// PaymentInitialization is returned to the client, which redirects the buyer
// to the gateway's hosted authorization page.
type PaymentInitialization struct {
	AuthorizationURL string  `json:"authorization_url"`
	Reference        string  `json:"reference"`
	GrandTotal       float64 `json:"grandTotal"`
}

// InitializePayment turns the customer's cart plus a shipping address and
// method into a gateway transaction. The amount is recomputed server-side:
// grandTotal = cart summary + configured shipping rate. On gateway success
// one PROCESSING order is recorded per cart line, each carrying a by-value
// snapshot of the selected measurement profile; on gateway failure no order
// is recorded.
func (s *CheckoutService) InitializePayment(customerID string, req models.PaymentInitializationRequest) (*PaymentInitialization, error) {
	address, err := s.addressRepo.GetByID(req.AddressID)
	if err != nil {
		return nil, err
	}
	if address.OwnerID != customerID {
		return nil, fmt.Errorf("address with ID %s not found", req.AddressID)
	}

	items, err := s.cartRepo.ListAll(customerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	subtotal, err := s.cartRepo.SumTotal(customerID)
	if err != nil {
		return nil, err
	}
	shippingCost, err := s.rates.Rate(req.ShippingMethod)
	if err != nil {
		return nil, err
	}
	grandTotal := subtotal + shippingCost

	email := req.Email
	if email == "" {
		user, err := s.userRepo.GetByID(customerID)
		if err != nil {
			return nil, fmt.Errorf("no email for payment: %w", err)
		}
		email = user.Email
	}

	narration := req.Narration
	if narration == "" {
		narration = "Order Payment"
	}

	reference := strings.ReplaceAll(uuid.New().String(), "-", "")
	initResp, err := s.gateway.Initialize(paygate.InitializeRequest{
		Amount:    grandTotal,
		Email:     email,
		Reference: reference,
		Channels:  req.Channel,
		Narration: narration,
	})
	if err != nil {
		return nil, fmt.Errorf("payment initialization failed: %w", err)
	}

	for _, item := range items {
		order := &models.Order{
			ID:              uuid.New().String(),
			CustomerID:      customerID,
			VendorID:        item.VendorID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ProductCategory: item.Category,
			Quantity:        item.Quantity,
			Amount:          item.LineTotal(),
			Status:          models.StatusProcessing,
			PaymentRef:      reference,
			Color:           item.Color,
			SleeveType:      item.SleeveType,
		}
		// Snapshot the measurement profile by value. A profile deleted
		// after the line was added leaves the snapshot empty; the order
		// itself stays valid.
		if profile, err := s.measurementRepo.GetByTag(customerID, item.MeasurementTag); err == nil {
			order.MeasurementValues = profile.MeasurementValues
		} else {
			log.Printf("Warning: No measurement profile %q for order %s: %v", item.MeasurementTag, order.ID, err)
		}

		if err := s.orderRepo.Create(order); err != nil {
			return nil, fmt.Errorf("failed to record order: %w", err)
		}
		s.publishEvent(rabbitmq.Event{
			Type:       "order.created",
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			VendorID:   order.VendorID,
			Status:     string(order.Status),
			Amount:     order.Amount,
			Email:      email,
		})
	}

	return &PaymentInitialization{
		AuthorizationURL: initResp.Data.AuthorizationURL,
		Reference:        reference,
		GrandTotal:       grandTotal,
	}, nil
}

// HandleWebhook applies the gateway's out-of-band payment confirmation. A
// successful charge advances every PROCESSING order under the payment
// reference to PAYMENT_COMPLETED and clears the customer's cart; a failed
// charge marks them FAILED. Unknown references are ignored so gateway
// retries stay harmless.
func (s *CheckoutService) HandleWebhook(event models.PaymentWebhookEvent) error {
	orders, err := s.orderRepo.ListByPaymentRef(event.Reference)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		log.Printf("Webhook for unknown payment reference %s ignored", event.Reference)
		return nil
	}

	var target models.OrderStatus
	switch {
	case event.Event == "charge.success" || event.Status == "success":
		target = models.StatusPaymentCompleted
	case event.Event == "charge.failed" || event.Status == "failed":
		target = models.StatusFailed
	default:
		log.Printf("Webhook event %q with status %q ignored", event.Event, event.Status)
		return nil
	}

	for _, order := range orders {
		if order.Status != models.StatusProcessing {
			// Gateway retries deliver the same confirmation more than once.
			continue
		}
		if err := s.orderRepo.UpdateStatus(order.ID, target); err != nil {
			return err
		}
		s.publishEvent(rabbitmq.Event{
			Type:       "order.status_updated",
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			VendorID:   order.VendorID,
			Status:     string(target),
		})
	}

	if target == models.StatusPaymentCompleted {
		if err := s.cartRepo.Clear(orders[0].CustomerID); err != nil {
			log.Printf("Warning: Failed to clear cart after payment %s: %v", event.Reference, err)
		}
	}
	return nil
}

func (s *CheckoutService) publishEvent(event rabbitmq.Event) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(event); err != nil {
		log.Printf("Warning: Failed to publish %s event for order %s: %v", event.Type, event.OrderID, err)
	}
}
