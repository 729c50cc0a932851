package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-ledger/backend/config"
)

func TestNewConnection_SQLiteInMemory(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		URL:             ":memory:",
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Migrate())
	assert.True(t, database.HealthCheck())

	for _, table := range []string{"transactions", "budgets", "fixed_expenses", "financial_goals", "reports", "user_settings"} {
		assert.True(t, database.DB().Migrator().HasTable(table), table)
	}
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestHealthCheck_ClosedConnection(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, database.Close())

	assert.False(t, database.HealthCheck())
}
