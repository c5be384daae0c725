package catalog

import (
	"strings"
	"time"

	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog entry scoped to a merchant.
// Code is unique within a merchant. UpdatedAt is the last-modified marker
// and is distinct from CreatedAt; price changes and general updates bump it.
type Product struct {
	shared.MerchantEntity
	Code           string
	Name           string
	Category       string
	Metadata       string // opaque JSON, passed through unmodified
	SalesRank      int64  // advances on every recorded sale
	BasePrice      decimal.NullDecimal
	BaseCost       decimal.NullDecimal
	SupplierID     string
	ManufacturerID string
	UPC            string
	MarketFlags    int64 // opaque market bit-field
	LastSoldAt     *time.Time
}

// NewProduct creates a new product with required fields
func NewProduct(merchantID uuid.UUID, code, name string) (*Product, error) {
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	return &Product{
		MerchantEntity: shared.NewMerchantEntity(merchantID),
		Code:           strings.ToUpper(code),
		Name:           name,
		Metadata:       "{}",
	}, nil
}

// Update updates the product's basic information and bumps the
// last-modified marker
func (p *Product) Update(name, category string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if len(category) > 100 {
		return shared.NewDomainError("VALIDATION_ERROR", "Category cannot exceed 100 characters")
	}

	p.Name = name
	p.Category = category
	p.UpdatedAt = time.Now().UTC()

	return nil
}

// SetMetadata replaces the opaque metadata blob
func (p *Product) SetMetadata(metadata string) error {
	if metadata == "" {
		metadata = "{}"
	}
	trimmed := strings.TrimSpace(metadata)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return shared.NewDomainError("VALIDATION_ERROR", "Metadata must be a JSON object")
	}

	p.Metadata = trimmed
	p.UpdatedAt = time.Now().UTC()

	return nil
}

// SetIdentifiers sets the optional sourcing identifiers
func (p *Product) SetIdentifiers(supplierID, manufacturerID, upc string) {
	p.SupplierID = supplierID
	p.ManufacturerID = manufacturerID
	p.UPC = upc
	p.UpdatedAt = time.Now().UTC()
}

// SetMarketFlags replaces the opaque market bit-field
func (p *Product) SetMarketFlags(flags int64) {
	p.MarketFlags = flags
	p.UpdatedAt = time.Now().UTC()
}

// SetPrice replaces the price fields. A null cost leaves the stored cost
// untouched at the persistence layer; negative values are rejected.
func (p *Product) SetPrice(basePrice decimal.Decimal, baseCost decimal.NullDecimal) error {
	if basePrice.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Base price cannot be negative")
	}
	if baseCost.Valid && baseCost.Decimal.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Base cost cannot be negative")
	}

	p.BasePrice = decimal.NullDecimal{Decimal: basePrice, Valid: true}
	if baseCost.Valid {
		p.BaseCost = baseCost
	}
	p.UpdatedAt = time.Now().UTC()

	return nil
}

// RecordSale stamps the last-sold time and advances the sales-rank counter.
// Deliberately not idempotent: every call advances the counter again.
// The persistence layer performs the equivalent increment in a single
// guarded statement.
func (p *Product) RecordSale(at time.Time) {
	t := at.UTC()
	p.LastSoldAt = &t
	p.SalesRank++
}

func validateProductCode(code string) error {
	if code == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Product code cannot be empty")
	}
	if len(code) > 64 {
		return shared.NewDomainError("VALIDATION_ERROR", "Product code cannot exceed 64 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("VALIDATION_ERROR", "Product code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Product name cannot exceed 200 characters")
	}
	return nil
}
