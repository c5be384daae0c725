package models

import (
	"github.com/commercerack/backend/internal/domain/customer"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	MerchantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_customers_merchant_email,priority:1"`
	Email      string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_customers_merchant_email,priority:2"`
	FirstName  string    `gorm:"type:varchar(100)"`
	LastName   string    `gorm:"type:varchar(100)"`
	PassHash   string    `gorm:"type:text"`
	PassSalt   string    `gorm:"type:varchar(64)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *customer.Customer {
	return &customer.Customer{
		MerchantEntity: shared.MerchantEntity{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			MerchantID: m.MerchantID,
		},
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		PassHash:  m.PassHash,
		PassSalt:  m.PassSalt,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.MerchantID = c.MerchantID
	m.Email = c.Email
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.PassHash = c.PassHash
	m.PassSalt = c.PassSalt
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
