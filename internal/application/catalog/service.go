package catalog

import (
	"context"
	"time"

	"github.com/commercerack/backend/internal/domain/catalog"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service handles catalog entry and pricing operations for a merchant
type Service struct {
	products catalog.Repository
}

// NewService creates a new catalog Service
func NewService(products catalog.Repository) *Service {
	return &Service{
		products: products,
	}
}

// Create creates a new product; the code must be unused within the merchant
func (s *Service) Create(ctx context.Context, merchantID uuid.UUID, req CreateProductRequest) (*catalog.Product, error) {
	p, err := catalog.NewProduct(merchantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	exists, err := s.products.ExistsByCode(ctx, merchantID, p.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CONFLICT", "Product with this code already exists")
	}

	if req.Category != "" {
		if err := p.Update(p.Name, req.Category); err != nil {
			return nil, err
		}
	}
	if req.Metadata != "" {
		if err := p.SetMetadata(req.Metadata); err != nil {
			return nil, err
		}
	}
	if req.SupplierID != "" || req.ManufacturerID != "" || req.UPC != "" {
		p.SetIdentifiers(req.SupplierID, req.ManufacturerID, req.UPC)
	}
	if req.MarketFlags != 0 {
		p.SetMarketFlags(req.MarketFlags)
	}
	if req.BasePrice.Valid {
		if err := p.SetPrice(req.BasePrice.Decimal, req.BaseCost); err != nil {
			return nil, err
		}
	}

	// The unique index backstops the precheck under concurrent creates.
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetByID retrieves a product by ID. Absence is not an error; the result
// is nil when no product matches.
func (s *Service) GetByID(ctx context.Context, merchantID, productID uuid.UUID) (*catalog.Product, error) {
	return s.products.FindByID(ctx, merchantID, productID)
}

// GetByCode retrieves a product by its merchant-local code. Absence is not
// an error.
func (s *Service) GetByCode(ctx context.Context, merchantID uuid.UUID, code string) (*catalog.Product, error) {
	return s.products.FindByCode(ctx, merchantID, code)
}

// List returns products ordered by creation time descending. Pagination is
// deterministic: consecutive pages neither duplicate nor skip rows absent
// concurrent writes.
func (s *Service) List(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]catalog.Product, error) {
	return s.products.List(ctx, merchantID, shared.Page{Limit: limit, Offset: offset})
}

// Update applies a general field update and bumps the last-modified marker
func (s *Service) Update(ctx context.Context, merchantID, productID uuid.UUID, req UpdateProductRequest) (*catalog.Product, error) {
	p, err := s.products.FindByID(ctx, merchantID, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, shared.ErrNotFound
	}

	name := p.Name
	category := p.Category
	if req.Name != nil {
		name = *req.Name
	}
	if req.Category != nil {
		category = *req.Category
	}
	if err := p.Update(name, category); err != nil {
		return nil, err
	}

	if req.Metadata != nil {
		if err := p.SetMetadata(*req.Metadata); err != nil {
			return nil, err
		}
	}
	if req.SupplierID != nil || req.ManufacturerID != nil || req.UPC != nil {
		supplierID := p.SupplierID
		manufacturerID := p.ManufacturerID
		upc := p.UPC
		if req.SupplierID != nil {
			supplierID = *req.SupplierID
		}
		if req.ManufacturerID != nil {
			manufacturerID = *req.ManufacturerID
		}
		if req.UPC != nil {
			upc = *req.UPC
		}
		p.SetIdentifiers(supplierID, manufacturerID, upc)
	}
	if req.MarketFlags != nil {
		p.SetMarketFlags(*req.MarketFlags)
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete hard-deletes a product
func (s *Service) Delete(ctx context.Context, merchantID, productID uuid.UUID) error {
	return s.products.Delete(ctx, merchantID, productID)
}

// UpdatePrice atomically replaces the price fields and bumps the
// last-modified marker. Negative values are rejected; a null cost keeps
// the stored cost.
func (s *Service) UpdatePrice(ctx context.Context, merchantID, productID uuid.UUID, basePrice decimal.Decimal, baseCost decimal.NullDecimal) (*catalog.Product, error) {
	if basePrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Base price cannot be negative")
	}
	if baseCost.Valid && baseCost.Decimal.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Base cost cannot be negative")
	}

	if err := s.products.UpdatePrice(ctx, merchantID, productID, basePrice, baseCost); err != nil {
		return nil, err
	}

	return s.products.FindByID(ctx, merchantID, productID)
}

// MarkSold stamps the last-sold timestamp and advances the sales-rank
// counter. Deliberately not idempotent: each call advances the counter
// again.
func (s *Service) MarkSold(ctx context.Context, merchantID, productID uuid.UUID) (*catalog.Product, error) {
	if err := s.products.RecordSale(ctx, merchantID, productID, time.Now()); err != nil {
		return nil, err
	}

	return s.products.FindByID(ctx, merchantID, productID)
}
