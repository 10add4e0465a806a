package models

// Shipping methods offered at checkout. The rate per method comes from
// configuration, not from code (the platform owns pricing).
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

// PaymentInitializationRequest is the checkout payload submitted once the
// buyer confirms the review step. Amount is recomputed server-side from the
// cart summary plus the shipping rate; the client-sent value is advisory.
type PaymentInitializationRequest struct {
	Amount              float64  `json:"amount"`
	Channel             []string `json:"channel" validate:"required,min=1"`
	Quantity            int      `json:"quantity"`
	ProductID           string   `json:"productId"`
	VendorID            string   `json:"vendorId"`
	Email               string   `json:"email" validate:"omitempty,email"`
	Narration           string   `json:"narration"`
	ProductCategoryName string   `json:"productCategoryName"`
	AddressID           string   `json:"addressId" validate:"required"`
	ShippingMethod      string   `json:"shippingMethod" validate:"required,oneof=standard express"`
}

// PaymentWebhookEvent is the out-of-band confirmation posted by the payment
// gateway after the buyer completes the hosted authorization flow.
type PaymentWebhookEvent struct {
	Event     string `json:"event"`
	Reference string `json:"reference" validate:"required"`
	Status    string `json:"status"`
}
