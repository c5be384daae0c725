package order

import (
	"context"
	"time"

	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for order persistence.
// Lookups return (nil, nil) when no order matches; absence is not an
// error. Mutations on missing rows return shared.ErrNotFound.
type Repository interface {
	// FindByID finds an order by ID within a merchant
	FindByID(ctx context.Context, merchantID, id uuid.UUID) (*Order, error)

	// FindByOrderID finds an order by its public order identifier
	FindByOrderID(ctx context.Context, merchantID uuid.UUID, orderID string) (*Order, error)

	// FindByCartID finds an order by its cart correlation identifier
	FindByCartID(ctx context.Context, merchantID uuid.UUID, cartID string) (*Order, error)

	// ListByCustomer returns a customer's orders ordered by creation time
	// descending with deterministic pagination
	ListByCustomer(ctx context.Context, merchantID, customerID uuid.UUID, page shared.Page) ([]Order, error)

	// ListByPool returns the orders in a fulfillment pool ordered by
	// creation time descending with deterministic pagination
	ListByPool(ctx context.Context, merchantID uuid.UUID, pool string, page shared.Page) ([]Order, error)

	// Create inserts a new order; a colliding order_id or cart_id within
	// the merchant surfaces as shared.ErrConflict
	Create(ctx context.Context, o *Order) error

	// Update persists the mutable non-status fields of an existing order.
	// The status column is never written by this method.
	Update(ctx context.Context, o *Order) error

	// Transition atomically moves an order from one status to another and
	// stamps the given timestamp column. The current-status check and the
	// write happen in one statement inside one transaction, so concurrent
	// calls resolve to exactly one success; the loser gets
	// shared.ErrInvalidTransition.
	Transition(ctx context.Context, merchantID, id uuid.UUID, from, to Status, at time.Time) error

	// Delete hard-deletes an order within a merchant, permitted from any state
	Delete(ctx context.Context, merchantID, id uuid.UUID) error
}
