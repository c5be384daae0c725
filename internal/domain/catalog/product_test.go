package catalog

import (
	"testing"
	"time"

	"github.com/commercerack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	merchantID := uuid.New()

	t.Run("creates product successfully", func(t *testing.T) {
		p, err := NewProduct(merchantID, "SKU-001", "Widget")

		require.NoError(t, err)
		assert.Equal(t, "SKU-001", p.Code)
		assert.Equal(t, "Widget", p.Name)
		assert.Equal(t, merchantID, p.MerchantID)
		assert.Equal(t, "{}", p.Metadata)
		assert.Zero(t, p.SalesRank)
		assert.False(t, p.BasePrice.Valid)
		assert.Nil(t, p.LastSoldAt)
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		p, err := NewProduct(merchantID, "sku-002", "Widget")

		require.NoError(t, err)
		assert.Equal(t, "SKU-002", p.Code)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		p, err := NewProduct(merchantID, "", "Widget")

		assert.Nil(t, p)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("fails with invalid code characters", func(t *testing.T) {
		p, err := NewProduct(merchantID, "SKU@001", "Widget")

		assert.Nil(t, p)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		p, err := NewProduct(merchantID, "SKU-001", "")

		assert.Nil(t, p)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestProductUpdate(t *testing.T) {
	p, err := NewProduct(uuid.New(), "SKU-001", "Widget")
	require.NoError(t, err)
	created := p.UpdatedAt

	t.Run("updates name and category and bumps marker", func(t *testing.T) {
		time.Sleep(time.Millisecond)
		err := p.Update("Better Widget", "gadgets")

		require.NoError(t, err)
		assert.Equal(t, "Better Widget", p.Name)
		assert.Equal(t, "gadgets", p.Category)
		assert.True(t, p.UpdatedAt.After(created))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := p.Update("", "gadgets")

		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestProductSetMetadata(t *testing.T) {
	p, err := NewProduct(uuid.New(), "SKU-001", "Widget")
	require.NoError(t, err)

	t.Run("accepts JSON object", func(t *testing.T) {
		require.NoError(t, p.SetMetadata(`{"color":"red"}`))
		assert.Equal(t, `{"color":"red"}`, p.Metadata)
	})

	t.Run("empty resets to empty object", func(t *testing.T) {
		require.NoError(t, p.SetMetadata(""))
		assert.Equal(t, "{}", p.Metadata)
	})

	t.Run("rejects non-object payload", func(t *testing.T) {
		err := p.SetMetadata(`["a","b"]`)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestProductSetPrice(t *testing.T) {
	p, err := NewProduct(uuid.New(), "SKU-001", "Widget")
	require.NoError(t, err)

	t.Run("sets price and cost", func(t *testing.T) {
		price := decimal.RequireFromString("19.99")
		cost := decimal.NullDecimal{Decimal: decimal.RequireFromString("7.50"), Valid: true}

		require.NoError(t, p.SetPrice(price, cost))

		assert.True(t, p.BasePrice.Valid)
		assert.True(t, p.BasePrice.Decimal.Equal(price))
		assert.True(t, p.BaseCost.Valid)
		assert.True(t, p.BaseCost.Decimal.Equal(cost.Decimal))
	})

	t.Run("null cost keeps stored cost", func(t *testing.T) {
		require.NoError(t, p.SetPrice(decimal.RequireFromString("24.99"), decimal.NullDecimal{}))

		assert.True(t, p.BasePrice.Decimal.Equal(decimal.RequireFromString("24.99")))
		assert.True(t, p.BaseCost.Valid)
		assert.True(t, p.BaseCost.Decimal.Equal(decimal.RequireFromString("7.50")))
	})

	t.Run("rejects negative price", func(t *testing.T) {
		err := p.SetPrice(decimal.RequireFromString("-1"), decimal.NullDecimal{})
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		cost := decimal.NullDecimal{Decimal: decimal.RequireFromString("-0.01"), Valid: true}
		err := p.SetPrice(decimal.RequireFromString("1"), cost)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestProductRecordSale(t *testing.T) {
	p, err := NewProduct(uuid.New(), "SKU-001", "Widget")
	require.NoError(t, err)

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p.RecordSale(at)

	require.NotNil(t, p.LastSoldAt)
	assert.Equal(t, at, *p.LastSoldAt)
	assert.EqualValues(t, 1, p.SalesRank)

	// Each call advances the counter again
	p.RecordSale(at.Add(time.Hour))
	assert.EqualValues(t, 2, p.SalesRank)
	assert.Equal(t, at.Add(time.Hour), *p.LastSoldAt)
}
