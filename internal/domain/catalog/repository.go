package catalog

import (
	"context"
	"time"

	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for product persistence.
// Lookups return (nil, nil) when no product matches; absence is not an
// error. Mutations on missing rows return shared.ErrNotFound.
type Repository interface {
	// FindByID finds a product by ID within a merchant
	FindByID(ctx context.Context, merchantID, id uuid.UUID) (*Product, error)

	// FindByCode finds a product by its merchant-local code
	FindByCode(ctx context.Context, merchantID uuid.UUID, code string) (*Product, error)

	// ExistsByCode checks if the code is already taken within the merchant
	ExistsByCode(ctx context.Context, merchantID uuid.UUID, code string) (bool, error)

	// List returns products for a merchant ordered by creation time
	// descending with deterministic pagination
	List(ctx context.Context, merchantID uuid.UUID, page shared.Page) ([]Product, error)

	// Create inserts a new product; a duplicate code within the merchant
	// surfaces as shared.ErrConflict
	Create(ctx context.Context, p *Product) error

	// Update persists all mutable fields of an existing product
	Update(ctx context.Context, p *Product) error

	// UpdatePrice atomically replaces the price fields and bumps the
	// last-modified marker. A null cost keeps the stored cost.
	UpdatePrice(ctx context.Context, merchantID, id uuid.UUID, basePrice decimal.Decimal, baseCost decimal.NullDecimal) error

	// RecordSale stamps last_sold_at and advances the sales-rank counter in
	// one atomic statement; every call advances the counter again
	RecordSale(ctx context.Context, merchantID, id uuid.UUID, at time.Time) error

	// Delete hard-deletes a product within a merchant
	Delete(ctx context.Context, merchantID, id uuid.UUID) error
}
