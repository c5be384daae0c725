package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/commercerack/backend/internal/domain/order"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/commercerack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID within a merchant
func (r *GormOrderRepository) FindByID(ctx context.Context, merchantID, id uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
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

// FindByOrderID finds an order by its public order identifier
func (r *GormOrderRepository) FindByOrderID(ctx context.Context, merchantID uuid.UUID, orderID string) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND order_id = ?", merchantID, orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCartID finds an order by its cart correlation identifier
func (r *GormOrderRepository) FindByCartID(ctx context.Context, merchantID uuid.UUID, cartID string) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND cart_id = ?", merchantID, cartID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ListByCustomer returns a customer's orders ordered by creation time
// descending with the ID tiebreaker for deterministic pagination
func (r *GormOrderRepository) ListByCustomer(ctx context.Context, merchantID, customerID uuid.UUID, page shared.Page) ([]order.Order, error) {
	return r.list(ctx, page, "merchant_id = ? AND customer_id = ?", merchantID, customerID)
}

// ListByPool returns the orders in a fulfillment pool ordered by creation
// time descending with the ID tiebreaker for deterministic pagination
func (r *GormOrderRepository) ListByPool(ctx context.Context, merchantID uuid.UUID, pool string, page shared.Page) ([]order.Order, error) {
	return r.list(ctx, page, "merchant_id = ? AND pool = ?", merchantID, pool)
}

func (r *GormOrderRepository) list(ctx context.Context, page shared.Page, query string, args ...any) ([]order.Order, error) {
	page = page.Normalize()

	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&orderModels).Error; err != nil {
		return nil, translateError(err)
	}

	orders := make([]order.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders, nil
}

// Create inserts a new order
func (r *GormOrderRepository) Create(ctx context.Context, o *order.Order) error {
	model := models.OrderModelFromDomain(o)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update persists the mutable non-status fields of an existing order.
// The status column is never part of the update set.
func (r *GormOrderRepository) Update(ctx context.Context, o *order.Order) error {
	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("merchant_id = ? AND id = ?", o.MerchantID, o.ID).
		UpdateColumns(map[string]any{
			"total":       o.Total,
			"bill_name":   o.BillName,
			"bill_email":  o.BillEmail,
			"ship_method": o.ShipMethod,
			"pool":        o.Pool,
			"updated_at":  o.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Transition atomically moves an order between statuses. The current-status
// guard sits in the WHERE clause, so of two racing calls exactly one
// matches the row; the loser re-reads inside the same transaction to
// distinguish a missing order from an illegal transition.
func (r *GormOrderRepository) Transition(ctx context.Context, merchantID, id uuid.UUID, from, to order.Status, at time.Time) error {
	if !from.CanTransitionTo(to) {
		return shared.ErrInvalidTransition
	}

	columns := map[string]any{
		"status":     to,
		"updated_at": at.UTC(),
	}
	switch to {
	case order.StatusPaid:
		columns["paid_at"] = at.UTC()
	case order.StatusShipped:
		columns["shipped_at"] = at.UTC()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.OrderModel{}).
			Where("merchant_id = ? AND id = ? AND status = ?", merchantID, id, from).
			UpdateColumns(columns)
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected > 0 {
			return nil
		}

		var count int64
		if err := tx.
			Model(&models.OrderModel{}).
			Where("merchant_id = ? AND id = ?", merchantID, id).
			Count(&count).Error; err != nil {
			return translateError(err)
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrInvalidTransition
	})
}

// Delete hard-deletes an order within a merchant, permitted from any state
func (r *GormOrderRepository) Delete(ctx context.Context, merchantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.OrderModel{}, "merchant_id = ? AND id = ?", merchantID, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormOrderRepository implements order.Repository
var _ order.Repository = (*GormOrderRepository)(nil)
