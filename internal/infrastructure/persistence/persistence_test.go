package persistence

import (
	"testing"

	"github.com/commercerack/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the same error
// translation the production connection uses, so unique violations surface
// as gorm.ErrDuplicatedKey here too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CustomerModel{},
		&models.ProductModel{},
		&models.OrderModel{},
	)
	require.NoError(t, err)

	return db
}
