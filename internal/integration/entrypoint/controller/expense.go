package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/application/usecase/expense"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/dto"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /api/v1/expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := expense.ListExpensesInput{
		UserID: userID,
	}

	// Parse date filters
	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := parseDateParam(startDateStr)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.StartDate = &startDate
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := parseDateParam(endDateStr)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.EndDate = &endDate
	}

	// Parse category filter
	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeCategoryNotFound),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	expenses := make([]dto.ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = dto.ToExpenseResponse(e)
	}
	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses: expenses,
		Total:    len(expenses),
	})
}

// Create handles POST /api/v1/expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingDescription),
		})
		return
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		respondInvalidDate(ctx)
		return
	}

	input := expense.CreateExpenseInput{
		UserID:      userID,
		Date:        date,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Unit:        req.Unit,
		Notes:       req.Notes,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeCategoryNotFound),
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.Quantity != nil {
		quantity := decimal.NewFromFloat(*req.Quantity)
		input.Quantity = &quantity
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreatedExpenseResponse(created))
}

// Update handles PATCH /api/v1/expenses/:id requests. Only the provided
// fields change; the merged result is revalidated before the write.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	expenseID, ok := parseExpenseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := expense.UpdateExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
		Unit:      req.Unit,
		Notes:     req.Notes,
	}
	if req.Date != nil {
		date, err := parseDateParam(*req.Date)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.Date = &date
	}
	if req.Description != nil {
		input.Description = req.Description
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeCategoryNotFound),
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.Quantity != nil {
		quantity := decimal.NewFromFloat(*req.Quantity)
		input.Quantity = &quantity
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreatedExpenseResponse(updated))
}

// Delete handles DELETE /api/v1/expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	expenseID, ok := parseExpenseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	}); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Expense deleted",
	})
}

// handleExpenseError maps expense errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(c.getStatusCodeForExpenseError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeMissingDescription,
		domainerror.ErrCodeMissingDate,
		domainerror.ErrCodeInvalidExpenseID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseExpenseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeInvalidExpenseID),
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseDateParam accepts a calendar date or a full RFC 3339 timestamp.
func parseDateParam(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

func respondUnauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

func respondInvalidDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid date format, expected YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidDateFormat),
	})
}
