package order

import (
	"context"
	"strings"
	"time"

	"github.com/commercerack/backend/internal/domain/customer"
	"github.com/commercerack/backend/internal/domain/order"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles the order lifecycle for a merchant.
// Status moves strictly CREATED -> PAID -> SHIPPED through MarkPaid and
// MarkShipped; Update never touches status. Deletion is a hard remove
// permitted from any state.
type Service struct {
	orders    order.Repository
	customers customer.Repository
}

// NewService creates a new order Service
func NewService(orders order.Repository, customers customer.Repository) *Service {
	return &Service{
		orders:    orders,
		customers: customers,
	}
}

// Create creates a new order in CREATED state with a generated public order
// id. The referenced customer must exist within the merchant; a colliding
// cart id or order id fails with Conflict.
func (s *Service) Create(ctx context.Context, merchantID uuid.UUID, req CreateOrderRequest) (*order.Order, error) {
	c, err := s.customers.FindByID(ctx, merchantID, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Customer does not exist in this merchant")
	}

	o, err := order.NewOrder(merchantID, newPublicOrderID(), req.CartID, req.CustomerID, req.Pool, req.Total)
	if err != nil {
		return nil, err
	}
	o.BillName = req.BillName
	o.BillEmail = req.BillEmail
	o.ShipMethod = req.ShipMethod

	// The unique indexes on (merchant_id, order_id) and
	// (merchant_id, cart_id) surface collisions as Conflict.
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// GetByID retrieves an order by ID. Absence is not an error; the result is
// nil when no order matches.
func (s *Service) GetByID(ctx context.Context, merchantID, orderID uuid.UUID) (*order.Order, error) {
	return s.orders.FindByID(ctx, merchantID, orderID)
}

// GetByOrderID retrieves an order by its public order identifier. Absence
// is not an error.
func (s *Service) GetByOrderID(ctx context.Context, merchantID uuid.UUID, publicOrderID string) (*order.Order, error) {
	return s.orders.FindByOrderID(ctx, merchantID, publicOrderID)
}

// GetByCartID retrieves an order by its cart correlation identifier.
// Absence is not an error.
func (s *Service) GetByCartID(ctx context.Context, merchantID uuid.UUID, cartID string) (*order.Order, error) {
	return s.orders.FindByCartID(ctx, merchantID, cartID)
}

// ListByCustomer returns a customer's orders, newest first, with
// deterministic pagination
func (s *Service) ListByCustomer(ctx context.Context, merchantID, customerID uuid.UUID, limit, offset int) ([]order.Order, error) {
	return s.orders.ListByCustomer(ctx, merchantID, customerID, shared.Page{Limit: limit, Offset: offset})
}

// ListByPool returns the orders in a fulfillment pool, newest first, with
// deterministic pagination
func (s *Service) ListByPool(ctx context.Context, merchantID uuid.UUID, pool string, limit, offset int) ([]order.Order, error) {
	return s.orders.ListByPool(ctx, merchantID, pool, shared.Page{Limit: limit, Offset: offset})
}

// Update mutates the non-status fields of an order. Any attempt to set the
// status directly fails with InvalidTransition.
func (s *Service) Update(ctx context.Context, merchantID, orderID uuid.UUID, req UpdateOrderRequest) (*order.Order, error) {
	if req.Status != nil {
		return nil, shared.NewDomainError("INVALID_TRANSITION",
			"Order status cannot be set directly; use MarkPaid or MarkShipped")
	}

	o, err := s.orders.FindByID(ctx, merchantID, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, shared.ErrNotFound
	}

	total := o.Total
	billName := o.BillName
	billEmail := o.BillEmail
	shipMethod := o.ShipMethod
	pool := o.Pool
	if req.Total != nil {
		total = *req.Total
	}
	if req.BillName != nil {
		billName = *req.BillName
	}
	if req.BillEmail != nil {
		billEmail = *req.BillEmail
	}
	if req.ShipMethod != nil {
		shipMethod = *req.ShipMethod
	}
	if req.Pool != nil {
		pool = *req.Pool
	}

	if err := o.Update(total, billName, billEmail, shipMethod, pool); err != nil {
		return nil, err
	}

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// MarkPaid transitions CREATED -> PAID and stamps the paid timestamp.
// The check and write happen in one transaction, so of two concurrent
// calls exactly one succeeds and the other fails with InvalidTransition.
func (s *Service) MarkPaid(ctx context.Context, merchantID, orderID uuid.UUID) (*order.Order, error) {
	if err := s.orders.Transition(ctx, merchantID, orderID, order.StatusCreated, order.StatusPaid, time.Now()); err != nil {
		return nil, err
	}

	return s.orders.FindByID(ctx, merchantID, orderID)
}

// MarkShipped transitions PAID -> SHIPPED and stamps the shipped timestamp
func (s *Service) MarkShipped(ctx context.Context, merchantID, orderID uuid.UUID) (*order.Order, error) {
	if err := s.orders.Transition(ctx, merchantID, orderID, order.StatusPaid, order.StatusShipped, time.Now()); err != nil {
		return nil, err
	}

	return s.orders.FindByID(ctx, merchantID, orderID)
}

// Delete hard-deletes an order; permitted from any state
func (s *Service) Delete(ctx context.Context, merchantID, orderID uuid.UUID) error {
	return s.orders.Delete(ctx, merchantID, orderID)
}

// newPublicOrderID generates a merchant-facing order identifier. Collisions
// are astronomically unlikely but the unique index still rejects them.
func newPublicOrderID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:16])
}
