package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderplan/backend/internal/domain/budget"
	"github.com/wanderplan/backend/internal/domain/shared"
	"gorm.io/gorm"
)

func setupBudgetTestDB(t *testing.T) *gorm.DB {
	return setupTripTestDB(t)
}

func createTestBudget(t *testing.T, ownerID, tripID uuid.UUID) *budget.Budget {
	t.Helper()
	b, err := budget.NewBudget(ownerID, tripID, "Trip budget", "EUR", decimal.NewFromInt(1000))
	require.NoError(t, err)
	return b
}

func TestGormBudgetRepository_CreateAndFind(t *testing.T) {
	db := setupBudgetTestDB(t)
	repo := NewGormBudgetRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	b := createTestBudget(t, ownerID, uuid.New())
	_, err := b.AddExpense(decimal.NewFromFloat(12.50), "", "Food", "2026-05-02", "lunch")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, b))

	t.Run("round-trips embedded expenses", func(t *testing.T) {
		found, err := repo.FindByID(ctx, ownerID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Trip budget", found.Name)
		assert.True(t, found.Limit.Equal(decimal.NewFromInt(1000)))
		require.Len(t, found.Expenses, 1)
		assert.Equal(t, "EUR", found.Expenses[0].Currency)
		assert.True(t, found.Expenses[0].Amount.Equal(decimal.NewFromFloat(12.50)))
	})

	t.Run("other owner gets not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New(), b.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormBudgetRepository_Create_DuplicateTrip(t *testing.T) {
	db := setupBudgetTestDB(t)
	repo := NewGormBudgetRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	tripID := uuid.New()

	first := createTestBudget(t, ownerID, tripID)
	require.NoError(t, repo.Create(ctx, first))

	second := createTestBudget(t, ownerID, tripID)
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestGormBudgetRepository_ExistsForTrip(t *testing.T) {
	db := setupBudgetTestDB(t)
	repo := NewGormBudgetRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	tripID := uuid.New()

	b := createTestBudget(t, ownerID, tripID)
	require.NoError(t, repo.Create(ctx, b))

	exists, err := repo.ExistsForTrip(ctx, ownerID, tripID, nil)
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("excludes the budget under edit", func(t *testing.T) {
		exists, err := repo.ExistsForTrip(ctx, ownerID, tripID, &b.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("scoped to owner", func(t *testing.T) {
		exists, err := repo.ExistsForTrip(ctx, uuid.New(), tripID, nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormBudgetRepository_Update_PersistsExpenseMutations(t *testing.T) {
	db := setupBudgetTestDB(t)
	repo := NewGormBudgetRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	b := createTestBudget(t, ownerID, uuid.New())
	require.NoError(t, repo.Create(ctx, b))

	expense, err := b.AddExpense(decimal.NewFromInt(30), "", "", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, b))

	found, err := repo.FindByID(ctx, ownerID, b.ID)
	require.NoError(t, err)
	require.Len(t, found.Expenses, 1)

	require.NoError(t, found.RemoveExpense(expense.ID))
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindByID(ctx, ownerID, b.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Expenses)
}

func TestGormBudgetRepository_Delete(t *testing.T) {
	db := setupBudgetTestDB(t)
	repo := NewGormBudgetRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	b := createTestBudget(t, ownerID, uuid.New())
	require.NoError(t, repo.Create(ctx, b))

	t.Run("other owner cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New(), b.ID), shared.ErrNotFound)
	})

	require.NoError(t, repo.Delete(ctx, ownerID, b.ID))
	_, err := repo.FindByID(ctx, ownerID, b.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
