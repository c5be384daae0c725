package models

import (
	"time"

	"github.com/commercerack/backend/internal/domain/catalog"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	MerchantID     uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_products_merchant_code,priority:1"`
	Code           string              `gorm:"type:varchar(64);not null;uniqueIndex:idx_products_merchant_code,priority:2"`
	Name           string              `gorm:"type:varchar(200);not null"`
	Category       string              `gorm:"type:varchar(100);index"`
	Metadata       string              `gorm:"type:text"`
	SalesRank      int64               `gorm:"not null;default:0"`
	BasePrice      decimal.NullDecimal `gorm:"type:decimal(18,4)"`
	BaseCost       decimal.NullDecimal `gorm:"type:decimal(18,4)"`
	SupplierID     string              `gorm:"type:varchar(64)"`
	ManufacturerID string              `gorm:"type:varchar(64)"`
	UPC            string              `gorm:"type:varchar(32);column:upc"`
	MarketFlags    int64               `gorm:"not null;default:0"`
	LastSoldAt     *time.Time
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		MerchantEntity: shared.MerchantEntity{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			MerchantID: m.MerchantID,
		},
		Code:           m.Code,
		Name:           m.Name,
		Category:       m.Category,
		Metadata:       m.Metadata,
		SalesRank:      m.SalesRank,
		BasePrice:      m.BasePrice,
		BaseCost:       m.BaseCost,
		SupplierID:     m.SupplierID,
		ManufacturerID: m.ManufacturerID,
		UPC:            m.UPC,
		MarketFlags:    m.MarketFlags,
		LastSoldAt:     m.LastSoldAt,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.MerchantID = p.MerchantID
	m.Code = p.Code
	m.Name = p.Name
	m.Category = p.Category
	m.Metadata = p.Metadata
	m.SalesRank = p.SalesRank
	m.BasePrice = p.BasePrice
	m.BaseCost = p.BaseCost
	m.SupplierID = p.SupplierID
	m.ManufacturerID = p.ManufacturerID
	m.UPC = p.UPC
	m.MarketFlags = p.MarketFlags
	m.LastSoldAt = p.LastSoldAt
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
