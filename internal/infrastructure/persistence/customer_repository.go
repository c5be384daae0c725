package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/commercerack/backend/internal/domain/customer"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/commercerack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements customer.Repository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by ID within a merchant
func (r *GormCustomerRepository) FindByID(ctx context.Context, merchantID, id uuid.UUID) (*customer.Customer, error) {
	var model models.CustomerModel
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

// FindByEmail finds a customer by normalized email within a merchant
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, merchantID uuid.UUID, email string) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND email = ?", merchantID, strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ExistsByEmail checks if the email is already taken within the merchant
func (r *GormCustomerRepository) ExistsByEmail(ctx context.Context, merchantID uuid.UUID, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("merchant_id = ? AND email = ?", merchantID, strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// Create inserts a new customer
func (r *GormCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := models.CustomerModelFromDomain(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update persists all mutable fields of an existing customer
func (r *GormCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("merchant_id = ? AND id = ?", c.MerchantID, c.ID).
		UpdateColumns(map[string]any{
			"email":      c.Email,
			"first_name": c.FirstName,
			"last_name":  c.LastName,
			"updated_at": c.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdateCredential atomically replaces the credential fields and the
// modified timestamp in a single transaction
func (r *GormCustomerRepository) UpdateCredential(ctx context.Context, c *customer.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.CustomerModel{}).
			Where("merchant_id = ? AND id = ?", c.MerchantID, c.ID).
			UpdateColumns(map[string]any{
				"pass_hash":  c.PassHash,
				"pass_salt":  c.PassSalt,
				"updated_at": c.UpdatedAt,
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

// Delete hard-deletes a customer within a merchant
func (r *GormCustomerRepository) Delete(ctx context.Context, merchantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.CustomerModel{}, "merchant_id = ? AND id = ?", merchantID, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCustomerRepository implements customer.Repository
var _ customer.Repository = (*GormCustomerRepository)(nil)
