package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/commercerack/backend/internal/domain/catalog"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/commercerack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.Repository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by ID within a merchant
func (r *GormProductRepository) FindByID(ctx context.Context, merchantID, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND id = ?", merchantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCode finds a product by its merchant-local code
func (r *GormProductRepository) FindByCode(ctx context.Context, merchantID uuid.UUID, code string) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND code = ?", merchantID, strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ExistsByCode checks if the code is already taken within the merchant
func (r *GormProductRepository) ExistsByCode(ctx context.Context, merchantID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("merchant_id = ? AND code = ?", merchantID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// List returns products for a merchant ordered by creation time descending.
// The ID tiebreaker keeps pagination deterministic when rows share a
// creation timestamp.
func (r *GormProductRepository) List(ctx context.Context, merchantID uuid.UUID, page shared.Page) ([]catalog.Product, error) {
	page = page.Normalize()

	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&productModels).Error; err != nil {
		return nil, translateError(err)
	}

	products := make([]catalog.Product, len(productModels))
	for i, model := range productModels {
		products[i] = *model.ToDomain()
	}
	return products, nil
}

// Create inserts a new product
func (r *GormProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	model := models.ProductModelFromDomain(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update persists all mutable fields of an existing product
func (r *GormProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("merchant_id = ? AND id = ?", p.MerchantID, p.ID).
		UpdateColumns(map[string]any{
			"name":            p.Name,
			"category":        p.Category,
			"metadata":        p.Metadata,
			"base_price":      p.BasePrice,
			"base_cost":       p.BaseCost,
			"supplier_id":     p.SupplierID,
			"manufacturer_id": p.ManufacturerID,
			"upc":             p.UPC,
			"market_flags":    p.MarketFlags,
			"updated_at":      p.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdatePrice atomically replaces the price fields and bumps the
// last-modified marker. A null cost keeps the stored cost.
func (r *GormProductRepository) UpdatePrice(ctx context.Context, merchantID, id uuid.UUID, basePrice decimal.Decimal, baseCost decimal.NullDecimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		columns := map[string]any{
			"base_price": decimal.NullDecimal{Decimal: basePrice, Valid: true},
			"updated_at": time.Now().UTC(),
		}
		if baseCost.Valid {
			columns["base_cost"] = baseCost
		}

		result := tx.
			Model(&models.ProductModel{}).
			Where("merchant_id = ? AND id = ?", merchantID, id).
			UpdateColumns(columns)
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// RecordSale stamps last_sold_at and advances the sales-rank counter in one
// atomic statement. The increment runs in SQL, so concurrent sales all
// count; every call advances the counter again.
func (r *GormProductRepository) RecordSale(ctx context.Context, merchantID, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.ProductModel{}).
			Where("merchant_id = ? AND id = ?", merchantID, id).
			UpdateColumns(map[string]any{
				"last_sold_at": at.UTC(),
				"sales_rank":   gorm.Expr("sales_rank + ?", 1),
			})
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Delete hard-deletes a product within a merchant
func (r *GormProductRepository) Delete(ctx context.Context, merchantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.ProductModel{}, "merchant_id = ? AND id = ?", merchantID, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormProductRepository implements catalog.Repository
var _ catalog.Repository = (*GormProductRepository)(nil)
