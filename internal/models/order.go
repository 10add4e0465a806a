package models

import (
	"time"
)

// OrderStatus is the finite state an order is in. Only the forward
// transitions listed in statusTransitions are valid; FAILED and REJECTED are
// terminal failure states.
type OrderStatus string

const (
	StatusProcessing                OrderStatus = "PROCESSING"
	StatusPaymentCompleted          OrderStatus = "PAYMENT_COMPLETED"
	StatusVendorProcessingStart     OrderStatus = "VENDOR_PROCESSING_START"
	StatusVendorProcessingCompleted OrderStatus = "VENDOR_PROCESSING_COMPLETED"
	StatusInTransit                 OrderStatus = "IN_TRANSIT"
	StatusCompleted                 OrderStatus = "COMPLETED"
	StatusFailed                    OrderStatus = "FAILED"
	StatusRejected                  OrderStatus = "REJECTED"
)

// statusTransitions is the explicit transition table. A status missing from
// the table is non-advanceable; callers treat that as a no-op.
var statusTransitions = map[OrderStatus]OrderStatus{
	StatusProcessing:                StatusPaymentCompleted,
	StatusPaymentCompleted:          StatusVendorProcessingStart,
	StatusVendorProcessingStart:     StatusVendorProcessingCompleted,
	StatusVendorProcessingCompleted: StatusInTransit,
	StatusInTransit:                 StatusCompleted,
}

// NextStatus returns the successor of the given status. ok is false when the
// status is terminal or unknown.
func NextStatus(current OrderStatus) (next OrderStatus, ok bool) {
	next, ok = statusTransitions[current]
	return next, ok
}

// IsTerminal reports whether no further transition is possible.
func IsTerminal(s OrderStatus) bool {
	_, ok := statusTransitions[s]
	return !ok
}

// Order is one garment order placed by a customer with a vendor. Orders are
// created when payment is initialized and are never hard-deleted; status
// transitions are the only mutation. The body measurements are captured by
// value at order time so later edits to the profile never touch the order.
type Order struct {
	ID                string            `json:"orderId" gorm:"primaryKey;type:varchar(36)"`
	CustomerID        string            `json:"customerId" gorm:"index;type:varchar(36)"`
	VendorID          string            `json:"vendorId" gorm:"index;type:varchar(36)"`
	ProductID         string            `json:"productId" gorm:"index;type:varchar(36)"`
	ProductName       string            `json:"productName" gorm:"type:varchar(100)"`
	ProductCategory   string            `json:"productCategory" gorm:"type:varchar(100)"`
	Quantity          int               `json:"quantity"`
	Amount            float64           `json:"amount"`
	Currency          string            `json:"currency" gorm:"type:varchar(8);default:NGN"`
	Status            OrderStatus       `json:"status" gorm:"index;type:varchar(32)"`
	PaymentRef        string            `json:"-" gorm:"index;type:varchar(64)"`
	Color             string            `json:"color" gorm:"type:varchar(32)"`
	SleeveType        string            `json:"sleeveType" gorm:"type:varchar(32)"`
	MeasurementValues MeasurementValues `json:"bodyMeasurementDto" gorm:"embedded;embeddedPrefix:bm_"`
	DateCreated       time.Time         `json:"dateCreated"`
	UpdatedAt         time.Time         `json:"-"`
}

// OrderFilter narrows order listings for both the vendor queue and the
// customer order history.
type OrderFilter struct {
	CustomerID      string
	VendorID        string
	OrderID         string
	ProductID       string
	ProductCategory string
	Status          OrderStatus
	Page            int
	Size            int
}

// OrderStatistics is the per-status bucket count shown on dashboard tiles.
// REJECTED orders are reported through the cancelled bucket.
type OrderStatistics struct {
	AllOrdersCount        int64 `json:"allOrdersCount"`
	ProcessingOrdersCount int64 `json:"processingOrdersCount"`
	CancelledOrdersCount  int64 `json:"cancelledOrdersCount"`
	FailedOrdersCount     int64 `json:"failedOrdersCount"`
	CompletedOrdersCount  int64 `json:"completedOrdersCount"`
	InTransitOrdersCount  int64 `json:"inTransitOrdersCount"`
	PaymentCompletedCount int64 `json:"paymentCompletedCount"`
}
