package migration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "add orders table")
	require.NoError(t, err)

	assert.Contains(t, mf.UpPath, "add_orders_table.up.sql")
	assert.Contains(t, mf.DownPath, "add_orders_table.down.sql")

	_, err = os.Stat(mf.UpPath)
	assert.NoError(t, err)
	_, err = os.Stat(mf.DownPath)
	assert.NoError(t, err)
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateMigration(dir, "first")
	require.NoError(t, err)

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.Contains(t, migrations[0], "first.up.sql")
}

func TestListMigrationsMissingDir(t *testing.T) {
	migrations, err := ListMigrations("does-not-exist")
	require.NoError(t, err)
	assert.Empty(t, migrations)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Add Orders Table", "add_orders_table"},
		{"fix--index", "fix_index"},
		{"trailing ", "trailing"},
		{"v2 schema!", "v2_schema"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in), tt.in)
	}
}
