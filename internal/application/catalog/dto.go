package catalog

import "github.com/shopspring/decimal"

// CreateProductRequest carries the fields for creating a product.
// Only Code and Name are required; the rest mirror the optional catalog
// columns and pass through unmodified.
type CreateProductRequest struct {
	Code           string
	Name           string
	Category       string
	Metadata       string
	SupplierID     string
	ManufacturerID string
	UPC            string
	MarketFlags    int64
	BasePrice      decimal.NullDecimal
	BaseCost       decimal.NullDecimal
}

// UpdateProductRequest carries the mutable fields for a general product
// update. Nil fields are left unchanged. Prices are excluded; UpdatePrice
// is the only way to change them.
type UpdateProductRequest struct {
	Name           *string
	Category       *string
	Metadata       *string
	SupplierID     *string
	ManufacturerID *string
	UPC            *string
	MarketFlags    *int64
}
