package budget

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wanderplan/backend/internal/domain/shared"
)

// DefaultCurrency is applied when neither the expense nor its budget
// carries a currency code.
const DefaultCurrency = "USD"

// DefaultExpenseCategory is applied to expenses created without a category
const DefaultExpenseCategory = "Other"

// Expense is one spend entry embedded in a budget. Defaults are resolved
// when the expense is written, never when it is read, so later edits to the
// parent budget do not rewrite history.
type Expense struct {
	ID       uuid.UUID       `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
}

// Budget is a spending cap tied to exactly one trip. At most one budget may
// exist per (user, trip) pair; the application layer enforces that against
// the repository before any write.
type Budget struct {
	shared.BaseEntity
	UserID    uuid.UUID
	TripID    uuid.UUID
	Name      string
	Currency  string
	Limit     decimal.Decimal
	StartDate string
	EndDate   string
	Expenses  []Expense
}

// NewBudget creates a budget for a trip
func NewBudget(userID, tripID uuid.UUID, name, currency string, limit decimal.Decimal) (*Budget, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if tripID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TRIP_ID", "Trip ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Budget name is required")
	}
	if limit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_LIMIT", "Budget limit cannot be negative")
	}
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Budget{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		TripID:     tripID,
		Name:       name,
		Currency:   currency,
		Limit:      limit,
		Expenses:   make([]Expense, 0),
	}, nil
}

// SetName replaces the budget name
func (b *Budget) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Budget name is required")
	}
	b.Name = name
	b.Touch()
	return nil
}

// SetCurrency replaces the currency code. Stored expenses keep the currency
// they were written with.
func (b *Budget) SetCurrency(currency string) {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	b.Currency = currency
	b.Touch()
}

// SetLimit replaces the spending cap
func (b *Budget) SetLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_LIMIT", "Budget limit cannot be negative")
	}
	b.Limit = limit
	b.Touch()
	return nil
}

// SetTripID re-points the budget at another trip
func (b *Budget) SetTripID(tripID uuid.UUID) error {
	if tripID == uuid.Nil {
		return shared.NewDomainError("INVALID_TRIP_ID", "Trip ID cannot be empty")
	}
	b.TripID = tripID
	b.Touch()
	return nil
}

// SetStartDate replaces the start date
func (b *Budget) SetStartDate(startDate string) {
	b.StartDate = startDate
	b.Touch()
}

// SetEndDate replaces the end date
func (b *Budget) SetEndDate(endDate string) {
	b.EndDate = endDate
	b.Touch()
}

// AddExpense appends a new expense, resolving defaults at write time
func (b *Budget) AddExpense(amount decimal.Decimal, currency, category, date, note string) (*Expense, error) {
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}

	expense := Expense{
		ID:       uuid.New(),
		Amount:   amount,
		Currency: b.resolveCurrency(currency),
		Category: resolveCategory(category),
		Date:     resolveDate(date),
		Note:     note,
	}

	b.Expenses = append(b.Expenses, expense)
	b.Touch()
	return &expense, nil
}

// UpdateExpense patches an existing expense. Nil fields are left untouched.
func (b *Budget) UpdateExpense(expenseID uuid.UUID, amount *decimal.Decimal, currency, category, date, note *string) (*Expense, error) {
	idx := b.expenseIndex(expenseID)
	if idx < 0 {
		return nil, shared.ErrNotFound
	}

	expense := &b.Expenses[idx]
	if amount != nil {
		if amount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
		}
		expense.Amount = *amount
	}
	if currency != nil {
		expense.Currency = b.resolveCurrency(*currency)
	}
	if category != nil {
		expense.Category = resolveCategory(*category)
	}
	if date != nil {
		expense.Date = resolveDate(*date)
	}
	if note != nil {
		expense.Note = *note
	}

	b.Touch()
	return expense, nil
}

// RemoveExpense deletes an expense by ID
func (b *Budget) RemoveExpense(expenseID uuid.UUID) error {
	idx := b.expenseIndex(expenseID)
	if idx < 0 {
		return shared.ErrNotFound
	}
	b.Expenses = append(b.Expenses[:idx], b.Expenses[idx+1:]...)
	b.Touch()
	return nil
}

// TotalSpent sums all expense amounts regardless of currency
func (b *Budget) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, expense := range b.Expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

func (b *Budget) expenseIndex(expenseID uuid.UUID) int {
	for i := range b.Expenses {
		if b.Expenses[i].ID == expenseID {
			return i
		}
	}
	return -1
}

func (b *Budget) resolveCurrency(currency string) string {
	currency = strings.TrimSpace(currency)
	if currency != "" {
		return currency
	}
	if b.Currency != "" {
		return b.Currency
	}
	return DefaultCurrency
}

func resolveCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultExpenseCategory
	}
	return category
}

func resolveDate(date string) string {
	if date == "" {
		return time.Now().Format("2006-01-02")
	}
	return date
}
