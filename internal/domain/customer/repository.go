package customer

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for customer persistence.
// Lookups return (nil, nil) when no customer matches; absence is not an
// error. Mutations on missing rows return shared.ErrNotFound.
type Repository interface {
	// FindByID finds a customer by ID within a merchant
	FindByID(ctx context.Context, merchantID, id uuid.UUID) (*Customer, error)

	// FindByEmail finds a customer by normalized email within a merchant
	FindByEmail(ctx context.Context, merchantID uuid.UUID, email string) (*Customer, error)

	// ExistsByEmail checks if the email is already taken within the merchant
	ExistsByEmail(ctx context.Context, merchantID uuid.UUID, email string) (bool, error)

	// Create inserts a new customer; a duplicate email within the merchant
	// surfaces as shared.ErrConflict
	Create(ctx context.Context, c *Customer) error

	// Update persists all mutable fields of an existing customer
	Update(ctx context.Context, c *Customer) error

	// UpdateCredential atomically replaces the credential fields and the
	// modified timestamp in a single transaction
	UpdateCredential(ctx context.Context, c *Customer) error

	// Delete hard-deletes a customer within a merchant
	Delete(ctx context.Context, merchantID, id uuid.UUID) error
}
