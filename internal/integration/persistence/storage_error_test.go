package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

var errConnectionReset = errors.New("connection reset by peer")

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestStorageErrors_FindIsNotNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "transactions"`).WillReturnError(errConnectionReset)

	_, err := repo.FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, domainerror.IsStorage(err))
	assert.False(t, domainerror.IsNotFound(err))
	assert.ErrorIs(t, err, errConnectionReset)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageErrors_CreateRejected(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBudgetRepository(db)

	mock.ExpectQuery(`INSERT INTO "budgets"`).WillReturnError(errConnectionReset)

	budget := entity.NewBudget("Food", decimal.NewFromInt(100), day("2024-03-01"), day("2024-03-31"),
		entity.BudgetPeriodMonthly, entity.StatusActive, "")
	err := repo.Create(context.Background(), budget)

	var storageErr *domainerror.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "create budget", storageErr.Op)
	assert.Zero(t, budget.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageErrors_ListFails(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "reports"`).WillReturnError(errConnectionReset)

	reports, err := repo.FindAll(context.Background())
	assert.Nil(t, reports)
	assert.True(t, domainerror.IsStorage(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageErrors_DeleteFails(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGoalRepository(db)

	mock.ExpectExec(`DELETE FROM "financial_goals"`).WillReturnError(errConnectionReset)

	err := repo.Delete(context.Background(), 3)
	assert.True(t, domainerror.IsStorage(err))
	assert.False(t, domainerror.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageErrors_DeleteMissingRowIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGoalRepository(db)

	mock.ExpectExec(`DELETE FROM "financial_goals"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
	assert.False(t, domainerror.IsStorage(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageErrors_TransactionRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTransactionRepository(db)
	manager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions"`).WillReturnError(errConnectionReset)
	mock.ExpectRollback()

	err := manager.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return repo.Create(ctx, newTxn(entity.TransactionTypeIncome, "10", "Salary", "2024-01-01"))
	})
	assert.True(t, domainerror.IsStorage(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
