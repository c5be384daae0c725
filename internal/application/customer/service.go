package customer

import (
	"context"

	"github.com/commercerack/backend/internal/domain/customer"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles customer identity and credential operations.
// Every operation is scoped to a merchant; the merchant ID always comes
// first and no customer is ever addressed without it.
type Service struct {
	customers customer.Repository
}

// NewService creates a new customer Service
func NewService(customers customer.Repository) *Service {
	return &Service{
		customers: customers,
	}
}

// Create creates a new customer, hashing the password when one is supplied
func (s *Service) Create(ctx context.Context, merchantID uuid.UUID, req CreateCustomerRequest) (*customer.Customer, error) {
	c, err := customer.NewCustomer(merchantID, req.Email, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	exists, err := s.customers.ExistsByEmail(ctx, merchantID, c.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CONFLICT", "Customer with this email already exists")
	}

	if req.Password != nil {
		if err := c.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	// The unique index backstops the precheck under concurrent creates.
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// GetByID retrieves a customer by ID. Absence is not an error; the result
// is nil when no customer matches.
func (s *Service) GetByID(ctx context.Context, merchantID, customerID uuid.UUID) (*customer.Customer, error) {
	return s.customers.FindByID(ctx, merchantID, customerID)
}

// GetByEmail retrieves a customer by email. Absence is not an error.
func (s *Service) GetByEmail(ctx context.Context, merchantID uuid.UUID, email string) (*customer.Customer, error) {
	normalized, err := customer.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return s.customers.FindByEmail(ctx, merchantID, normalized)
}

// Update mutates name and email fields and bumps the modified timestamp.
// Email uniqueness is re-checked when the email changes.
func (s *Service) Update(ctx context.Context, merchantID, customerID uuid.UUID, req UpdateCustomerRequest) (*customer.Customer, error) {
	c, err := s.customers.FindByID(ctx, merchantID, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.ErrNotFound
	}

	if req.Email != nil {
		normalized, err := customer.NormalizeEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if normalized != c.Email {
			exists, err := s.customers.ExistsByEmail(ctx, merchantID, normalized)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("CONFLICT", "Customer with this email already exists")
			}
		}
		if err := c.UpdateEmail(normalized); err != nil {
			return nil, err
		}
	}

	if req.FirstName != nil || req.LastName != nil {
		firstName := c.FirstName
		lastName := c.LastName
		if req.FirstName != nil {
			firstName = *req.FirstName
		}
		if req.LastName != nil {
			lastName = *req.LastName
		}
		if err := c.UpdateName(firstName, lastName); err != nil {
			return nil, err
		}
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete hard-deletes a customer
func (s *Service) Delete(ctx context.Context, merchantID, customerID uuid.UUID) error {
	return s.customers.Delete(ctx, merchantID, customerID)
}

// VerifyPassword checks a candidate password against the customer's stored
// credential. A customer without a credential never verifies, and that is
// not an error; the only error case is an unparsable stored hash.
func (s *Service) VerifyPassword(c *customer.Customer, candidate string) (bool, error) {
	return c.VerifyPassword(candidate)
}

// SetPassword rehashes with a fresh salt and atomically replaces both
// credential fields and the modified timestamp. The old password no longer
// verifies afterward.
func (s *Service) SetPassword(ctx context.Context, merchantID, customerID uuid.UUID, newPassword string) (*customer.Customer, error) {
	c, err := s.customers.FindByID(ctx, merchantID, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.ErrNotFound
	}

	if err := c.SetPassword(newPassword); err != nil {
		return nil, err
	}

	if err := s.customers.UpdateCredential(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
