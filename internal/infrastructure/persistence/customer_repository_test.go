package persistence

import (
	"context"
	"testing"

	"github.com/commercerack/backend/internal/domain/customer"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T, merchantID uuid.UUID, email string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(merchantID, email, "Jane", "Doe")
	require.NoError(t, err)
	return c
}

func TestCustomerRepositoryCreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()
	merchantID := uuid.New()

	c := newTestCustomer(t, merchantID, "jane@example.com")
	require.NoError(t, repo.Create(ctx, c))

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, merchantID, c.ID)

		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, c.ID, found.ID)
		assert.Equal(t, "jane@example.com", found.Email)
		assert.Equal(t, merchantID, found.MerchantID)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, merchantID, "jane@example.com")

		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, c.ID, found.ID)
	})

	t.Run("absent customer yields nil without error", func(t *testing.T) {
		found, err := repo.FindByID(ctx, merchantID, uuid.New())

		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("exists by email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, merchantID, "jane@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, merchantID, "other@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCustomerRepositoryMerchantScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()
	merchantA := uuid.New()
	merchantB := uuid.New()

	c := newTestCustomer(t, merchantA, "jane@example.com")
	require.NoError(t, repo.Create(ctx, c))

	t.Run("same email allowed under another merchant", func(t *testing.T) {
		other := newTestCustomer(t, merchantB, "jane@example.com")
		assert.NoError(t, repo.Create(ctx, other))
	})

	t.Run("duplicate email within merchant yields Conflict", func(t *testing.T) {
		dup := newTestCustomer(t, merchantA, "jane@example.com")
		err := repo.Create(ctx, dup)

		assert.ErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("customer invisible from another merchant", func(t *testing.T) {
		found, err := repo.FindByID(ctx, merchantB, c.ID)

		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete scoped to merchant", func(t *testing.T) {
		err := repo.Delete(ctx, merchantB, c.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCustomerRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()
	merchantID := uuid.New()

	c := newTestCustomer(t, merchantID, "jane@example.com")
	require.NoError(t, repo.Create(ctx, c))

	t.Run("persists changed fields", func(t *testing.T) {
		require.NoError(t, c.UpdateName("Janet", "Doe"))
		require.NoError(t, c.UpdateEmail("janet@example.com"))

		require.NoError(t, repo.Update(ctx, c))

		found, err := repo.FindByID(ctx, merchantID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Janet", found.FirstName)
		assert.Equal(t, "janet@example.com", found.Email)
	})

	t.Run("update does not touch credential columns", func(t *testing.T) {
		require.NoError(t, repo.UpdateCredential(ctx, mustWithPassword(t, c, "keep-me")))

		require.NoError(t, c.UpdateName("Jane", "Doe"))
		require.NoError(t, repo.Update(ctx, c))

		found, err := repo.FindByID(ctx, merchantID, c.ID)
		require.NoError(t, err)
		assert.True(t, found.HasPassword())
	})

	t.Run("missing customer yields NotFound", func(t *testing.T) {
		ghost := newTestCustomer(t, merchantID, "ghost@example.com")
		err := repo.Update(ctx, ghost)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func mustWithPassword(t *testing.T, c *customer.Customer, password string) *customer.Customer {
	t.Helper()
	require.NoError(t, c.SetPassword(password))
	return c
}

func TestCustomerRepositoryUpdateCredential(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()
	merchantID := uuid.New()

	c := newTestCustomer(t, merchantID, "jane@example.com")
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, c.SetPassword("s3cret"))
	require.NoError(t, repo.UpdateCredential(ctx, c))

	found, err := repo.FindByID(ctx, merchantID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.PassHash, found.PassHash)
	assert.Equal(t, c.PassSalt, found.PassSalt)

	ok, err := found.VerifyPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("missing customer yields NotFound", func(t *testing.T) {
		ghost := mustWithPassword(t, newTestCustomer(t, merchantID, "ghost@example.com"), "x")
		err := repo.UpdateCredential(ctx, ghost)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCustomerRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()
	merchantID := uuid.New()

	c := newTestCustomer(t, merchantID, "jane@example.com")
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.Delete(ctx, merchantID, c.ID))

	found, err := repo.FindByID(ctx, merchantID, c.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	t.Run("second delete yields NotFound", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, merchantID, c.ID), shared.ErrNotFound)
	})
}
