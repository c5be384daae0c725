package order

import (
	"time"

	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of an order
type Status string

const (
	StatusCreated Status = "CREATED"
	StatusPaid    Status = "PAID"
	StatusShipped Status = "SHIPPED"
)

// DefaultPool is assigned when the caller supplies no fulfillment pool,
// matching the legacy allocation behavior.
const DefaultPool = "RECENT"

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPaid, StatusShipped:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// The lifecycle is strictly CREATED -> PAID -> SHIPPED; SHIPPED is terminal.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusCreated:
		return target == StatusPaid
	case StatusPaid:
		return target == StatusShipped
	case StatusShipped:
		return false
	}
	return false
}

// Order represents a merchant-scoped order aggregate root.
// OrderID is the public order identifier and CartID the pre-order
// correlation identifier; both are unique within a merchant. Status never
// changes through Update — only through MarkPaid and MarkShipped.
// Line items are an external aggregate maintained by the surrounding
// system and are not modeled here.
type Order struct {
	shared.MerchantEntity
	OrderID    string
	CartID     string
	CustomerID uuid.UUID
	Pool       string
	Status     Status
	Total      decimal.Decimal
	BillName   string
	BillEmail  string
	ShipMethod string
	PaidAt     *time.Time
	ShippedAt  *time.Time
}

// NewOrder creates a new order in CREATED state
func NewOrder(merchantID uuid.UUID, orderID, cartID string, customerID uuid.UUID, pool string, total decimal.Decimal) (*Order, error) {
	if orderID == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order ID cannot be empty")
	}
	if len(orderID) > 64 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order ID cannot exceed 64 characters")
	}
	if cartID == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Cart ID cannot be empty")
	}
	if len(cartID) > 64 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Cart ID cannot exceed 64 characters")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Customer ID cannot be empty")
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order total cannot be negative")
	}
	if pool == "" {
		pool = DefaultPool
	}

	return &Order{
		MerchantEntity: shared.NewMerchantEntity(merchantID),
		OrderID:        orderID,
		CartID:         cartID,
		CustomerID:     customerID,
		Pool:           pool,
		Status:         StatusCreated,
		Total:          total,
	}, nil
}

// Update mutates the non-status fields and bumps the modified timestamp.
// Status is deliberately untouchable here; transitions go through
// MarkPaid and MarkShipped.
func (o *Order) Update(total decimal.Decimal, billName, billEmail, shipMethod, pool string) error {
	if total.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Order total cannot be negative")
	}
	if pool == "" {
		pool = o.Pool
	}

	o.Total = total
	o.BillName = billName
	o.BillEmail = billEmail
	o.ShipMethod = shipMethod
	o.Pool = pool
	o.UpdatedAt = time.Now().UTC()

	return nil
}

// MarkPaid transitions CREATED -> PAID and stamps the paid timestamp
func (o *Order) MarkPaid(at time.Time) error {
	if !o.Status.CanTransitionTo(StatusPaid) {
		return shared.NewDomainError("INVALID_TRANSITION",
			"Cannot mark order paid from status "+o.Status.String())
	}

	t := at.UTC()
	o.Status = StatusPaid
	o.PaidAt = &t
	o.UpdatedAt = t

	return nil
}

// MarkShipped transitions PAID -> SHIPPED and stamps the shipped timestamp
func (o *Order) MarkShipped(at time.Time) error {
	if !o.Status.CanTransitionTo(StatusShipped) {
		return shared.NewDomainError("INVALID_TRANSITION",
			"Cannot mark order shipped from status "+o.Status.String())
	}

	t := at.UTC()
	o.Status = StatusShipped
	o.ShippedAt = &t
	o.UpdatedAt = t

	return nil
}
