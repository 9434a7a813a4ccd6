package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wanderplan/backend/internal/domain/budget"
)

// BudgetModel is the persistence model for budgets. Expenses are embedded
// as a JSON document; every expense mutation rewrites the parent row.
type BudgetModel struct {
	BaseModel
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_user_trip"`
	TripID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_trip"`
	Name         string          `gorm:"size:200;not null"`
	Currency     string          `gorm:"size:10;not null"`
	LimitAmount  decimal.Decimal `gorm:"column:limit_amount;type:decimal(15,2);not null"`
	StartDate    string          `gorm:"size:50"`
	EndDate      string          `gorm:"size:50"`
	ExpensesJSON string          `gorm:"column:expenses;type:jsonb;default:'[]'"`
}

// TableName returns the table name for BudgetModel
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToDomain converts BudgetModel to a domain Budget
func (m *BudgetModel) ToDomain() (*budget.Budget, error) {
	expenses := make([]budget.Expense, 0)
	if m.ExpensesJSON != "" {
		if err := json.Unmarshal([]byte(m.ExpensesJSON), &expenses); err != nil {
			return nil, err
		}
	}

	return &budget.Budget{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		TripID:     m.TripID,
		Name:       m.Name,
		Currency:   m.Currency,
		Limit:      m.LimitAmount,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Expenses:   expenses,
	}, nil
}

// BudgetModelFromDomain creates a BudgetModel from a domain Budget
func BudgetModelFromDomain(b *budget.Budget) (*BudgetModel, error) {
	expenses := b.Expenses
	if expenses == nil {
		expenses = make([]budget.Expense, 0)
	}
	expensesJSON, err := json.Marshal(expenses)
	if err != nil {
		return nil, err
	}

	m := &BudgetModel{
		UserID:       b.UserID,
		TripID:       b.TripID,
		Name:         b.Name,
		Currency:     b.Currency,
		LimitAmount:  b.Limit,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		ExpensesJSON: string(expensesJSON),
	}
	m.FromDomainBaseEntity(b.BaseEntity)
	return m, nil
}
