package order

import (
	"context"
	"testing"
	"time"

	"github.com/commercerack/backend/internal/domain/customer"
	"github.com/commercerack/backend/internal/domain/order"
	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, merchantID, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, merchantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderID(ctx context.Context, merchantID uuid.UUID, orderID string) (*order.Order, error) {
	args := m.Called(ctx, merchantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCartID(ctx context.Context, merchantID uuid.UUID, cartID string) (*order.Order, error) {
	args := m.Called(ctx, merchantID, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, merchantID, customerID uuid.UUID, page shared.Page) ([]order.Order, error) {
	args := m.Called(ctx, merchantID, customerID, page)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByPool(ctx context.Context, merchantID uuid.UUID, pool string, page shared.Page) ([]order.Order, error) {
	args := m.Called(ctx, merchantID, pool, page)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Transition(ctx context.Context, merchantID, id uuid.UUID, from, to order.Status, at time.Time) error {
	args := m.Called(ctx, merchantID, id, from, to, at)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, merchantID, id uuid.UUID) error {
	args := m.Called(ctx, merchantID, id)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of customer.Repository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, merchantID, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, merchantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, merchantID uuid.UUID, email string) (*customer.Customer, error) {
	args := m.Called(ctx, merchantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, merchantID uuid.UUID, email string) (bool, error) {
	args := m.Called(ctx, merchantID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCredential(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, merchantID, id uuid.UUID) error {
	args := m.Called(ctx, merchantID, id)
	return args.Error(0)
}

func testCustomer(t *testing.T, merchantID uuid.UUID) *customer.Customer {
	c, err := customer.NewCustomer(merchantID, "buyer@example.com", "Jane", "Doe")
	require.NoError(t, err)
	return c
}

func TestOrderServiceCreate(t *testing.T) {
	merchantID := uuid.New()
	ctx := context.Background()

	t.Run("creates order in CREATED state with generated order id", func(t *testing.T) {
		orders := new(MockOrderRepository)
		customers := new(MockCustomerRepository)
		service := NewService(orders, customers)
		buyer := testCustomer(t, merchantID)

		customers.On("FindByID", ctx, merchantID, buyer.ID).Return(buyer, nil)
		orders.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

		o, err := service.Create(ctx, merchantID, CreateOrderRequest{
			CustomerID: buyer.ID,
			CartID:     "CART-42",
			Total:      decimal.RequireFromString("99.95"),
			BillName:   "Jane Doe",
			BillEmail:  "buyer@example.com",
			ShipMethod: "GROUND",
		})

		require.NoError(t, err)
		assert.Equal(t, order.StatusCreated, o.Status)
		assert.Regexp(t, `^ORD-[0-9A-F]{16}$`, o.OrderID)
		assert.Equal(t, "CART-42", o.CartID)
		assert.Equal(t, order.DefaultPool, o.Pool)
		assert.Equal(t, "Jane Doe", o.BillName)
		orders.AssertExpectations(t)
	})

	t.Run("fails when customer does not exist in the merchant", func(t *testing.T) {
		orders := new(MockOrderRepository)
		customers := new(MockCustomerRepository)
		service := NewService(orders, customers)
		customerID := uuid.New()

		customers.On("FindByID", ctx, merchantID, customerID).Return(nil, nil)

		o, err := service.Create(ctx, merchantID, CreateOrderRequest{
			CustomerID: customerID,
			CartID:     "CART-42",
			Total:      decimal.Zero,
		})

		assert.Nil(t, o)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("propagates cart id conflict from the store", func(t *testing.T) {
		orders := new(MockOrderRepository)
		customers := new(MockCustomerRepository)
		service := NewService(orders, customers)
		buyer := testCustomer(t, merchantID)

		customers.On("FindByID", ctx, merchantID, buyer.ID).Return(buyer, nil)
		orders.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(shared.ErrConflict)

		o, err := service.Create(ctx, merchantID, CreateOrderRequest{
			CustomerID: buyer.ID,
			CartID:     "CART-42",
			Total:      decimal.Zero,
		})

		assert.Nil(t, o)
		assert.ErrorIs(t, err, shared.ErrConflict)
	})
}

func TestOrderServiceUpdate(t *testing.T) {
	merchantID := uuid.New()
	ctx := context.Background()

	newStored := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(merchantID, "ORD-1", "CART-1", uuid.New(), "", decimal.RequireFromString("10"))
		require.NoError(t, err)
		return o
	}

	t.Run("rejects any direct status write", func(t *testing.T) {
		orders := new(MockOrderRepository)
		service := NewService(orders, new(MockCustomerRepository))

		status := "PAID"
		o, err := service.Update(ctx, merchantID, uuid.New(), UpdateOrderRequest{Status: &status})

		assert.Nil(t, o)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
		orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("updates non-status fields", func(t *testing.T) {
		orders := new(MockOrderRepository)
		service := NewService(orders, new(MockCustomerRepository))
		stored := newStored(t)

		orders.On("FindByID", ctx, merchantID, stored.ID).Return(stored, nil)
		orders.On("Update", ctx, stored).Return(nil)

		total := decimal.RequireFromString("25")
		pool := "PRIORITY"
		got, err := service.Update(ctx, merchantID, stored.ID, UpdateOrderRequest{Total: &total, Pool: &pool})

		require.NoError(t, err)
		assert.True(t, got.Total.Equal(total))
		assert.Equal(t, "PRIORITY", got.Pool)
		assert.Equal(t, order.StatusCreated, got.Status)
	})

	t.Run("missing order yields NotFound", func(t *testing.T) {
		orders := new(MockOrderRepository)
		service := NewService(orders, new(MockCustomerRepository))
		id := uuid.New()

		orders.On("FindByID", ctx, merchantID, id).Return(nil, nil)

		got, err := service.Update(ctx, merchantID, id, UpdateOrderRequest{})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrderServiceTransitions(t *testing.T) {
	merchantID := uuid.New()
	ctx := context.Background()

	t.Run("mark paid delegates to guarded transition", func(t *testing.T) {
		orders := new(MockOrderRepository)
		service := NewService(orders, new(MockCustomerRepository))

		o, err := order.NewOrder(merchantID, "ORD-1", "CART-1", uuid.New(), "", decimal.Zero)
		require.NoError(t, err)

		orders.On("Transition", ctx, merchantID, o.ID, order.StatusCreated, order.StatusPaid, mock.AnythingOfType("time.Time")).Return(nil)
		orders.On("FindByID", ctx, merchantID, o.ID).Return(o, nil)

		_, err = service.MarkPaid(ctx, merchantID, o.ID)

		require.NoError(t, err)
		orders.AssertExpectations(t)
	})

	t.Run("losing transition surfaces InvalidTransition", func(t *testing.T) {
		orders := new(MockOrderRepository)
		service := NewService(orders, new(MockCustomerRepository))
		id := uuid.New()

		orders.On("Transition", ctx, merchantID, id, order.StatusCreated, order.StatusPaid, mock.AnythingOfType("time.Time")).
			Return(shared.ErrInvalidTransition)

		got, err := service.MarkPaid(ctx, merchantID, id)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
		orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mark shipped requires PAID", func(t *testing.T) {
		orders := new(MockOrderRepository)
		service := NewService(orders, new(MockCustomerRepository))
		id := uuid.New()

		orders.On("Transition", ctx, merchantID, id, order.StatusPaid, order.StatusShipped, mock.AnythingOfType("time.Time")).
			Return(shared.ErrInvalidTransition)

		_, err := service.MarkShipped(ctx, merchantID, id)

		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
	})
}

func TestOrderServiceLists(t *testing.T) {
	merchantID := uuid.New()
	ctx := context.Background()

	orders := new(MockOrderRepository)
	service := NewService(orders, new(MockCustomerRepository))
	customerID := uuid.New()

	orders.On("ListByCustomer", ctx, merchantID, customerID, shared.Page{Limit: 5, Offset: 0}).Return([]order.Order{}, nil)
	orders.On("ListByPool", ctx, merchantID, "RECENT", shared.Page{Limit: 5, Offset: 5}).Return([]order.Order{}, nil)

	_, err := service.ListByCustomer(ctx, merchantID, customerID, 5, 0)
	require.NoError(t, err)

	_, err = service.ListByPool(ctx, merchantID, "RECENT", 5, 5)
	require.NoError(t, err)

	orders.AssertExpectations(t)
}

func TestNewPublicOrderID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newPublicOrderID()
		assert.Regexp(t, `^ORD-[0-9A-F]{16}$`, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
