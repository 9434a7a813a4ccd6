package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wanderplan/backend/internal/domain/budget"
)

// CreateBudgetInput contains the input for budget creation
type CreateBudgetInput struct {
	TripID    uuid.UUID
	Name      string
	Currency  string
	Limit     decimal.Decimal
	StartDate string
	EndDate   string
}

// UpdateBudgetInput contains a partial update. Nil fields were absent from
// the request body and must be left untouched.
type UpdateBudgetInput struct {
	TripID    *uuid.UUID
	Name      *string
	Currency  *string
	Limit     *decimal.Decimal
	StartDate *string
	EndDate   *string
}

// AddExpenseInput contains the input for adding an expense. Blank currency,
// category and date fall back at write time.
type AddExpenseInput struct {
	Amount   decimal.Decimal
	Currency string
	Category string
	Date     string
	Note     string
}

// UpdateExpenseInput contains a partial expense update
type UpdateExpenseInput struct {
	Amount   *decimal.Decimal
	Currency *string
	Category *string
	Date     *string
	Note     *string
}

// ExpenseInfo is the expense representation returned to the client
type ExpenseInfo struct {
	ID       uuid.UUID       `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
}

// BudgetInfo is the budget representation returned to the client
type BudgetInfo struct {
	ID         uuid.UUID       `json:"id"`
	TripID     uuid.UUID       `json:"tripId"`
	Name       string          `json:"name"`
	Currency   string          `json:"currency"`
	Limit      decimal.Decimal `json:"limit"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Expenses   []ExpenseInfo   `json:"expenses"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func toBudgetInfo(b *budget.Budget) *BudgetInfo {
	expenses := make([]ExpenseInfo, 0, len(b.Expenses))
	for _, e := range b.Expenses {
		expenses = append(expenses, ExpenseInfo(e))
	}
	return &BudgetInfo{
		ID:         b.ID,
		TripID:     b.TripID,
		Name:       b.Name,
		Currency:   b.Currency,
		Limit:      b.Limit,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Expenses:   expenses,
		TotalSpent: b.TotalSpent(),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func toBudgetInfos(budgets []*budget.Budget) []*BudgetInfo {
	result := make([]*BudgetInfo, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, toBudgetInfo(b))
	}
	return result
}
