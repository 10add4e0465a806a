package services_test

import (
	"fmt"
	"testing"

	"atelier/internal/models"
	"atelier/internal/repositories"
	"atelier/internal/services"
	"atelier/pkg/paygate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a mock implementation of repositories.AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) ListByOwner(ownerID string) ([]models.Address, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.Address), args.Error(1)
}

func (m *MockAddressRepository) GetByID(id string) (*models.Address, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockAddressRepository) Create(address *models.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

// stubGateway records initialize calls and can be told to fail.
type stubGateway struct {
	failWith error
	requests []paygate.InitializeRequest
}

func (g *stubGateway) Initialize(req paygate.InitializeRequest) (*paygate.InitializeResponse, error) {
	g.requests = append(g.requests, req)
	if g.failWith != nil {
		return nil, g.failWith
	}
	resp := &paygate.InitializeResponse{Status: true}
	resp.Data.AuthorizationURL = "https://checkout.example.com/" + req.Reference
	resp.Data.Reference = req.Reference
	return resp, nil
}

type checkoutFixture struct {
	service     *services.CheckoutService
	cartRepo    *repositories.MockCartRepository
	orderRepo   *repositories.MockOrderRepository
	addressRepo *MockAddressRepository
	measRepo    *MockMeasurementRepository
	userRepo    *MockUserRepository
	gateway     *stubGateway
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	f := &checkoutFixture{
		cartRepo:    repositories.NewMockCartRepository(),
		orderRepo:   repositories.NewMockOrderRepository(),
		addressRepo: new(MockAddressRepository),
		measRepo:    new(MockMeasurementRepository),
		userRepo:    new(MockUserRepository),
		gateway:     &stubGateway{},
	}
	f.service = services.NewCheckoutService(
		f.cartRepo, f.addressRepo, f.orderRepo, f.measRepo, f.userRepo,
		f.gateway,
		services.ShippingRates{Standard: 2000, Express: 5000},
		nil,
	)
	return f
}

func (f *checkoutFixture) seedCart(t *testing.T) {
	t.Helper()
	// 1 x 10000 + 2 x 5000 = 20000 subtotal
	assert.NoError(t, f.cartRepo.Create(&models.CartItem{
		CustomerID: "cust-1", ProductID: "prod-1", ProductName: "Agbada",
		VendorID: "vendor-1", Category: "Native",
		CartVariation: models.CartVariation{Color: "blue", SleeveType: "long", MeasurementTag: "self"},
		Quantity:      1, UnitPrice: 10000,
	}))
	assert.NoError(t, f.cartRepo.Create(&models.CartItem{
		CustomerID: "cust-1", ProductID: "prod-2", ProductName: "Senator Wear",
		VendorID: "vendor-1", Category: "Native",
		CartVariation: models.CartVariation{Color: "white", SleeveType: "short", MeasurementTag: "brother"},
		Quantity:      2, UnitPrice: 5000,
	}))
}

func paymentRequest() models.PaymentInitializationRequest {
	return models.PaymentInitializationRequest{
		Channel:        []string{"card"},
		Email:          "ada@example.com",
		AddressID:      "addr-1",
		ShippingMethod: models.ShippingExpress,
	}
}

func TestCheckoutService_InitializePayment(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t)

	f.addressRepo.On("GetByID", "addr-1").Return(&models.Address{ID: "addr-1", OwnerID: "cust-1"}, nil).Once()
	f.measRepo.On("GetByTag", "cust-1", "self").Return(&models.BodyMeasurement{
		Tag:               "self",
		MeasurementValues: models.MeasurementValues{Neck: 38, Chest: 100},
	}, nil).Once()
	f.measRepo.On("GetByTag", "cust-1", "brother").Return(&models.BodyMeasurement{
		Tag:               "brother",
		MeasurementValues: models.MeasurementValues{Neck: 41, Chest: 108},
	}, nil).Once()

	result, err := f.service.InitializePayment("cust-1", paymentRequest())
	assert.NoError(t, err)

	// 20000 subtotal + 5000 express shipping
	assert.Equal(t, 25000.0, result.GrandTotal)
	assert.NotEmpty(t, result.Reference)
	assert.Equal(t, "https://checkout.example.com/"+result.Reference, result.AuthorizationURL)

	// The gateway was charged the recomputed amount, not the client's
	assert.Len(t, f.gateway.requests, 1)
	assert.Equal(t, 25000.0, f.gateway.requests[0].Amount)
	assert.Equal(t, "ada@example.com", f.gateway.requests[0].Email)

	// One PROCESSING order per cart line, sharing the payment reference and
	// carrying the measurement snapshot by value
	orders, err := f.orderRepo.ListByPaymentRef(result.Reference)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, models.StatusProcessing, order.Status)
		assert.Equal(t, "cust-1", order.CustomerID)
		assert.Equal(t, "vendor-1", order.VendorID)
		switch order.ProductID {
		case "prod-1":
			assert.Equal(t, 10000.0, order.Amount)
			assert.Equal(t, 38.0, order.MeasurementValues.Neck)
		case "prod-2":
			assert.Equal(t, 10000.0, order.Amount) // 2 x 5000
			assert.Equal(t, 41.0, order.MeasurementValues.Neck)
		default:
			t.Fatalf("unexpected order for product %s", order.ProductID)
		}
	}
	f.addressRepo.AssertExpectations(t)
	f.measRepo.AssertExpectations(t)
}

func TestCheckoutService_InitializePaymentGatewayFailureLeavesNoOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t)
	f.gateway.failWith = fmt.Errorf("gateway unreachable")

	f.addressRepo.On("GetByID", "addr-1").Return(&models.Address{ID: "addr-1", OwnerID: "cust-1"}, nil).Once()

	_, err := f.service.InitializePayment("cust-1", paymentRequest())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payment initialization failed")

	orders, _, listErr := f.orderRepo.List(models.OrderFilter{CustomerID: "cust-1", Size: 10})
	assert.NoError(t, listErr)
	assert.Empty(t, orders)

	// The cart is untouched as well
	items, _ := f.cartRepo.ListAll("cust-1")
	assert.Len(t, items, 2)
}

func TestCheckoutService_InitializePaymentRejectsForeignAddress(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t)

	f.addressRepo.On("GetByID", "addr-1").Return(&models.Address{ID: "addr-1", OwnerID: "cust-2"}, nil).Once()

	_, err := f.service.InitializePayment("cust-1", paymentRequest())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, f.gateway.requests)
}

func TestCheckoutService_InitializePaymentEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	f.addressRepo.On("GetByID", "addr-1").Return(&models.Address{ID: "addr-1", OwnerID: "cust-1"}, nil).Once()

	_, err := f.service.InitializePayment("cust-1", paymentRequest())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cart is empty")
	assert.Empty(t, f.gateway.requests)
}

func TestCheckoutService_WebhookSuccess(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t)

	f.addressRepo.On("GetByID", "addr-1").Return(&models.Address{ID: "addr-1", OwnerID: "cust-1"}, nil).Once()
	f.measRepo.On("GetByTag", "cust-1", mock.Anything).Return(nil, notFoundErr("any")).Twice()

	result, err := f.service.InitializePayment("cust-1", paymentRequest())
	assert.NoError(t, err)

	err = f.service.HandleWebhook(models.PaymentWebhookEvent{
		Event:     "charge.success",
		Reference: result.Reference,
		Status:    "success",
	})
	assert.NoError(t, err)

	orders, _ := f.orderRepo.ListByPaymentRef(result.Reference)
	assert.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, models.StatusPaymentCompleted, order.Status)
	}

	// The paid-for cart is cleared
	items, _ := f.cartRepo.ListAll("cust-1")
	assert.Empty(t, items)

	// A gateway retry of the same confirmation is harmless
	err = f.service.HandleWebhook(models.PaymentWebhookEvent{
		Event:     "charge.success",
		Reference: result.Reference,
		Status:    "success",
	})
	assert.NoError(t, err)
	orders, _ = f.orderRepo.ListByPaymentRef(result.Reference)
	for _, order := range orders {
		assert.Equal(t, models.StatusPaymentCompleted, order.Status)
	}
}

func TestCheckoutService_WebhookFailureMarksOrdersFailed(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t)

	f.addressRepo.On("GetByID", "addr-1").Return(&models.Address{ID: "addr-1", OwnerID: "cust-1"}, nil).Once()
	f.measRepo.On("GetByTag", "cust-1", mock.Anything).Return(nil, notFoundErr("any")).Twice()

	result, err := f.service.InitializePayment("cust-1", paymentRequest())
	assert.NoError(t, err)

	err = f.service.HandleWebhook(models.PaymentWebhookEvent{
		Event:     "charge.failed",
		Reference: result.Reference,
		Status:    "failed",
	})
	assert.NoError(t, err)

	orders, _ := f.orderRepo.ListByPaymentRef(result.Reference)
	for _, order := range orders {
		assert.Equal(t, models.StatusFailed, order.Status)
	}

	// A failed charge keeps the cart so the buyer can retry
	items, _ := f.cartRepo.ListAll("cust-1")
	assert.Len(t, items, 2)
}

func TestCheckoutService_WebhookUnknownReferenceIgnored(t *testing.T) {
	f := newCheckoutFixture(t)

	err := f.service.HandleWebhook(models.PaymentWebhookEvent{
		Event:     "charge.success",
		Reference: "no-such-ref",
		Status:    "success",
	})
	assert.NoError(t, err)
}
