package budget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderplan/backend/internal/domain/shared"
)

func newTestBudget(t *testing.T) *Budget {
	t.Helper()
	b, err := NewBudget(uuid.New(), uuid.New(), "Paris trip", "EUR", decimal.NewFromInt(1200))
	require.NoError(t, err)
	return b
}

func TestNewBudget(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()

	t.Run("creates budget successfully", func(t *testing.T) {
		b, err := NewBudget(userID, tripID, "Paris trip", "EUR", decimal.NewFromInt(1200))

		require.NoError(t, err)
		assert.Equal(t, "Paris trip", b.Name)
		assert.Equal(t, "EUR", b.Currency)
		assert.True(t, b.Limit.Equal(decimal.NewFromInt(1200)))
		assert.Empty(t, b.Expenses)
	})

	t.Run("defaults currency", func(t *testing.T) {
		b, err := NewBudget(userID, tripID, "Paris trip", "", decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, DefaultCurrency, b.Currency)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		b, err := NewBudget(userID, tripID, "  ", "USD", decimal.Zero)

		assert.Error(t, err)
		assert.Nil(t, b)
	})

	t.Run("fails with negative limit", func(t *testing.T) {
		b, err := NewBudget(userID, tripID, "Paris trip", "USD", decimal.NewFromInt(-1))

		assert.Error(t, err)
		assert.Nil(t, b)
	})
}

func TestBudget_AddExpense(t *testing.T) {
	t.Run("applies write-time defaults", func(t *testing.T) {
		b := newTestBudget(t)

		expense, err := b.AddExpense(decimal.NewFromInt(40), "", "", "", "")

		require.NoError(t, err)
		assert.Equal(t, "EUR", expense.Currency)
		assert.Equal(t, DefaultExpenseCategory, expense.Category)
		assert.Equal(t, time.Now().Format("2006-01-02"), expense.Date)
		assert.Equal(t, "", expense.Note)
		assert.Len(t, b.Expenses, 1)
	})

	t.Run("keeps explicit fields", func(t *testing.T) {
		b := newTestBudget(t)

		expense, err := b.AddExpense(decimal.NewFromFloat(12.5), "GBP", "Food", "2026-05-03", "lunch")

		require.NoError(t, err)
		assert.Equal(t, "GBP", expense.Currency)
		assert.Equal(t, "Food", expense.Category)
		assert.Equal(t, "2026-05-03", expense.Date)
		assert.Equal(t, "lunch", expense.Note)
	})

	t.Run("inherited currency survives budget currency change", func(t *testing.T) {
		b := newTestBudget(t)

		expense, err := b.AddExpense(decimal.NewFromInt(40), "", "", "", "")
		require.NoError(t, err)
		require.Equal(t, "EUR", expense.Currency)

		b.SetCurrency("USD")
		assert.Equal(t, "EUR", b.Expenses[0].Currency)
	})

	t.Run("fails with negative amount", func(t *testing.T) {
		b := newTestBudget(t)

		expense, err := b.AddExpense(decimal.NewFromInt(-5), "", "", "", "")

		assert.Error(t, err)
		assert.Nil(t, expense)
		assert.Empty(t, b.Expenses)
	})
}

func TestBudget_UpdateExpense(t *testing.T) {
	t.Run("patches only provided fields", func(t *testing.T) {
		b := newTestBudget(t)
		expense, err := b.AddExpense(decimal.NewFromInt(40), "GBP", "Food", "2026-05-03", "lunch")
		require.NoError(t, err)

		amount := decimal.NewFromInt(55)
		updated, err := b.UpdateExpense(expense.ID, &amount, nil, nil, nil, nil)

		require.NoError(t, err)
		assert.True(t, updated.Amount.Equal(amount))
		assert.Equal(t, "GBP", updated.Currency)
		assert.Equal(t, "Food", updated.Category)
	})

	t.Run("blank currency patch falls back to budget currency", func(t *testing.T) {
		b := newTestBudget(t)
		expense, err := b.AddExpense(decimal.NewFromInt(40), "GBP", "", "", "")
		require.NoError(t, err)

		blank := ""
		updated, err := b.UpdateExpense(expense.ID, nil, &blank, nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "EUR", updated.Currency)
	})

	t.Run("unknown expense returns not found", func(t *testing.T) {
		b := newTestBudget(t)

		_, err := b.UpdateExpense(uuid.New(), nil, nil, nil, nil, nil)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestBudget_RemoveExpense(t *testing.T) {
	b := newTestBudget(t)
	expense, err := b.AddExpense(decimal.NewFromInt(40), "", "", "", "")
	require.NoError(t, err)

	require.NoError(t, b.RemoveExpense(expense.ID))
	assert.Empty(t, b.Expenses)

	assert.ErrorIs(t, b.RemoveExpense(expense.ID), shared.ErrNotFound)
}

func TestBudget_TotalSpent(t *testing.T) {
	b := newTestBudget(t)
	_, err := b.AddExpense(decimal.NewFromFloat(10.50), "", "", "", "")
	require.NoError(t, err)
	_, err = b.AddExpense(decimal.NewFromFloat(4.25), "", "", "", "")
	require.NoError(t, err)

	assert.True(t, b.TotalSpent().Equal(decimal.NewFromFloat(14.75)))
}
