package customer

import (
	"regexp"
	"strings"
	"time"

	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer represents a storefront shopper scoped to a merchant.
// It is the aggregate root for identity and credential operations.
// Email is unique within a merchant; an empty PassHash means no password
// has been set and verification always fails.
type Customer struct {
	shared.MerchantEntity
	Email     string
	FirstName string
	LastName  string
	// PassHash holds the full PHC-encoded Argon2id hash. PassSalt duplicates
	// the salt already embedded in the hash; the legacy schema stores it as
	// its own column and downstream consumers still read it.
	PassHash string
	PassSalt string
}

// NewCustomer creates a new customer without a credential
func NewCustomer(merchantID uuid.UUID, email, firstName, lastName string) (*Customer, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := validateName(firstName, "first name"); err != nil {
		return nil, err
	}
	if err := validateName(lastName, "last name"); err != nil {
		return nil, err
	}

	return &Customer{
		MerchantEntity: shared.NewMerchantEntity(merchantID),
		Email:          normalized,
		FirstName:      firstName,
		LastName:       lastName,
	}, nil
}

// UpdateName updates the customer's name and bumps the modified timestamp
func (c *Customer) UpdateName(firstName, lastName string) error {
	if err := validateName(firstName, "first name"); err != nil {
		return err
	}
	if err := validateName(lastName, "last name"); err != nil {
		return err
	}

	c.FirstName = firstName
	c.LastName = lastName
	c.UpdatedAt = time.Now().UTC()

	return nil
}

// UpdateEmail changes the customer's email and bumps the modified timestamp.
// Uniqueness within the merchant is enforced by the service and the store.
func (c *Customer) UpdateEmail(email string) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}

	c.Email = normalized
	c.UpdatedAt = time.Now().UTC()

	return nil
}

// SetPassword derives a fresh Argon2id hash with a newly generated salt and
// replaces both credential fields. The previous password no longer verifies.
func (c *Customer) SetPassword(password string) error {
	if password == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Password cannot be empty")
	}

	hash, salt, err := HashPassword(password)
	if err != nil {
		return err
	}

	c.PassHash = hash
	c.PassSalt = salt
	c.UpdatedAt = time.Now().UTC()

	return nil
}

// HasPassword reports whether a credential has been set
func (c *Customer) HasPassword() bool {
	return c.PassHash != ""
}

// VerifyPassword checks the candidate against the stored hash.
// A customer without a credential never verifies; that is not an error.
// The only error case is a stored hash that cannot be parsed.
func (c *Customer) VerifyPassword(candidate string) (bool, error) {
	if c.PassHash == "" {
		return false, nil
	}
	return VerifyPassword(c.PassHash, candidate)
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and validates an email address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Email cannot be empty")
	}
	if len(email) > 200 {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Invalid email format")
	}
	return email, nil
}

func validateName(name, field string) error {
	if len(name) > 100 {
		return shared.NewDomainError("VALIDATION_ERROR", "Customer "+field+" cannot exceed 100 characters")
	}
	return nil
}
