package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MerchantEntity extends BaseEntity with the owning merchant (tenant).
// Every entity in the system is addressed through its merchant; nothing
// is ever looked up by bare ID.
type MerchantEntity struct {
	BaseEntity
	MerchantID uuid.UUID
}

// NewMerchantEntity creates a new merchant-scoped entity
func NewMerchantEntity(merchantID uuid.UUID) MerchantEntity {
	return MerchantEntity{
		BaseEntity: NewBaseEntity(),
		MerchantID: merchantID,
	}
}

// GetMerchantID returns the owning merchant ID
func (e *MerchantEntity) GetMerchantID() uuid.UUID {
	return e.MerchantID
}
