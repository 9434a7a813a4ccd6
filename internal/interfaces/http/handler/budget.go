package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wanderplan/backend/internal/application/budget"
	"github.com/wanderplan/backend/internal/interfaces/http/router"
)

// CreateBudgetRequest is the request body for budget creation
type CreateBudgetRequest struct {
	TripID    uuid.UUID       `json:"tripId" binding:"required"`
	Name      string          `json:"name"`
	Currency  string          `json:"currency"`
	Limit     decimal.Decimal `json:"limit"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
}

// UpdateBudgetRequest is the request body for a partial budget update
type UpdateBudgetRequest struct {
	TripID    *uuid.UUID       `json:"tripId"`
	Name      *string          `json:"name"`
	Currency  *string          `json:"currency"`
	Limit     *decimal.Decimal `json:"limit"`
	StartDate *string          `json:"startDate"`
	EndDate   *string          `json:"endDate"`
}

// AddExpenseRequest is the request body for adding an expense
type AddExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
}

// UpdateExpenseRequest is the request body for a partial expense update
type UpdateExpenseRequest struct {
	Amount   *decimal.Decimal `json:"amount"`
	Currency *string          `json:"currency"`
	Category *string          `json:"category"`
	Date     *string          `json:"date"`
	Note     *string          `json:"note"`
}

// BudgetHandler handles budget CRUD and embedded expense mutations
type BudgetHandler struct {
	BaseHandler
	budgetService *budget.BudgetService
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService *budget.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// Routes returns the budget route group
func (h *BudgetHandler) Routes() *router.DomainGroup {
	group := router.NewDomainGroup("budgets", "/budgets")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PATCH("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.POST("/:id/expenses", h.AddExpense)
	group.PATCH("/:id/expenses/:expenseId", h.UpdateExpense)
	group.DELETE("/:id/expenses/:expenseId", h.RemoveExpense)
	return group
}

// Create creates a budget for one of the user's trips
func (h *BudgetHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.budgetService.CreateBudget(c.Request.Context(), userID, budget.CreateBudgetInput{
		TripID:    req.TripID,
		Name:      req.Name,
		Currency:  req.Currency,
		Limit:     req.Limit,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns the user's budgets, optionally filtered by trip
func (h *BudgetHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if tripIDStr := c.Query("tripId"); tripIDStr != "" {
		tripID, err := uuid.Parse(tripIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid trip ID")
			return
		}
		budgets, err := h.budgetService.ListBudgetsByTrip(c.Request.Context(), userID, tripID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.SuccessWithCount(c, budgets, len(budgets))
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithCount(c, budgets, len(budgets))
}

// Get returns one of the user's budgets
func (h *BudgetHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	result, err := h.budgetService.GetBudget(c.Request.Context(), userID, budgetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update applies a partial update to one of the user's budgets
func (h *BudgetHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.budgetService.UpdateBudget(c.Request.Context(), userID, budgetID, budget.UpdateBudgetInput{
		TripID:    req.TripID,
		Name:      req.Name,
		Currency:  req.Currency,
		Limit:     req.Limit,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete deletes one of the user's budgets
func (h *BudgetHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, budgetID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddExpense appends an expense to a budget
func (h *BudgetHandler) AddExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.budgetService.AddExpense(c.Request.Context(), userID, budgetID, budget.AddExpenseInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Category: req.Category,
		Date:     req.Date,
		Note:     req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// UpdateExpense patches one expense inside a budget
func (h *BudgetHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid budget ID")
		return
	}
	expenseID, ok := parseIDParam(c, "expenseId")
	if !ok {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.budgetService.UpdateExpense(c.Request.Context(), userID, budgetID, expenseID, budget.UpdateExpenseInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Category: req.Category,
		Date:     req.Date,
		Note:     req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RemoveExpense deletes one expense from a budget
func (h *BudgetHandler) RemoveExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid budget ID")
		return
	}
	expenseID, ok := parseIDParam(c, "expenseId")
	if !ok {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.budgetService.RemoveExpense(c.Request.Context(), userID, budgetID, expenseID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
