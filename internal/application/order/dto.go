package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest carries the fields for creating an order.
// The public order id is generated by the service; the cart id correlates
// the order with the checkout that produced it.
type CreateOrderRequest struct {
	CustomerID uuid.UUID
	CartID     string
	Pool       string
	Total      decimal.Decimal
	BillName   string
	BillEmail  string
	ShipMethod string
}

// UpdateOrderRequest carries the mutable non-status fields of an order.
// Nil fields are left unchanged. Status is present only so that direct
// status writes can be rejected: any non-nil Status fails with
// InvalidTransition — transitions go through MarkPaid and MarkShipped.
type UpdateOrderRequest struct {
	Total      *decimal.Decimal
	BillName   *string
	BillEmail  *string
	ShipMethod *string
	Pool       *string
	Status     *string
}
