package models

import (
	"time"

	"github.com/commercerack/backend/internal/domain/order"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order domain entity.
type OrderModel struct {
	BaseModel
	MerchantID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_orders_merchant_order_id,priority:1;uniqueIndex:idx_orders_merchant_cart_id,priority:1;index:idx_orders_merchant_customer,priority:1;index:idx_orders_merchant_pool,priority:1"`
	OrderID    string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_orders_merchant_order_id,priority:2"`
	CartID     string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_orders_merchant_cart_id,priority:2"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_merchant_customer,priority:2"`
	Pool       string          `gorm:"type:varchar(32);not null;default:'RECENT';index:idx_orders_merchant_pool,priority:2"`
	Status     order.Status    `gorm:"type:varchar(16);not null;default:'CREATED'"`
	Total      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	BillName   string          `gorm:"type:varchar(200)"`
	BillEmail  string          `gorm:"type:varchar(200)"`
	ShipMethod string          `gorm:"type:varchar(100)"`
	PaidAt     *time.Time
	ShippedAt  *time.Time
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *order.Order {
	return &order.Order{
		MerchantEntity: shared.MerchantEntity{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			MerchantID: m.MerchantID,
		},
		OrderID:    m.OrderID,
		CartID:     m.CartID,
		CustomerID: m.CustomerID,
		Pool:       m.Pool,
		Status:     m.Status,
		Total:      m.Total,
		BillName:   m.BillName,
		BillEmail:  m.BillEmail,
		ShipMethod: m.ShipMethod,
		PaidAt:     m.PaidAt,
		ShippedAt:  m.ShippedAt,
	}
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.MerchantID = o.MerchantID
	m.OrderID = o.OrderID
	m.CartID = o.CartID
	m.CustomerID = o.CustomerID
	m.Pool = o.Pool
	m.Status = o.Status
	m.Total = o.Total
	m.BillName = o.BillName
	m.BillEmail = o.BillEmail
	m.ShipMethod = o.ShipMethod
	m.PaidAt = o.PaidAt
	m.ShippedAt = o.ShippedAt
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
