package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/application/usecase/report"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/dto"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/middleware"
)

// RevenueController handles revenue endpoints.
type RevenueController struct {
	revenueRepo         adapter.RevenueRepository
	transactionsUseCase *report.GetRevenueTransactionsUseCase
}

// NewRevenueController creates a new revenue controller instance.
func NewRevenueController(
	revenueRepo adapter.RevenueRepository,
	transactionsUseCase *report.GetRevenueTransactionsUseCase,
) *RevenueController {
	return &RevenueController{
		revenueRepo:         revenueRepo,
		transactionsUseCase: transactionsUseCase,
	}
}

// ListOrders handles GET /api/v1/revenue/orders requests.
func (c *RevenueController) ListOrders(ctx *gin.Context) {
	userID, dateRange, ok := c.parseListParams(ctx)
	if !ok {
		return
	}

	orders, err := c.revenueRepo.FindOrders(ctx.Request.Context(), userID, dateRange)
	if err != nil {
		respondSourceUnavailable(ctx, "orders")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders))
}

// ListMarkets handles GET /api/v1/revenue/markets requests.
func (c *RevenueController) ListMarkets(ctx *gin.Context) {
	userID, dateRange, ok := c.parseListParams(ctx)
	if !ok {
		return
	}

	markets, err := c.revenueRepo.FindMarkets(ctx.Request.Context(), userID, dateRange)
	if err != nil {
		respondSourceUnavailable(ctx, "markets")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMarketListResponse(markets))
}

// ListCourses handles GET /api/v1/revenue/courses requests.
func (c *RevenueController) ListCourses(ctx *gin.Context) {
	userID, dateRange, ok := c.parseListParams(ctx)
	if !ok {
		return
	}

	courses, err := c.revenueRepo.FindCourses(ctx.Request.Context(), userID, dateRange)
	if err != nil {
		respondSourceUnavailable(ctx, "courses")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCourseListResponse(courses))
}

// ListTransactions handles GET /api/v1/revenue/transactions requests. The
// response carries the normalized union of all three sources, newest first;
// a failed source contributes no rows and is named in failed_sources.
func (c *RevenueController) ListTransactions(ctx *gin.Context) {
	userID, dateRange, ok := c.parseListParams(ctx)
	if !ok {
		return
	}

	output, err := c.transactionsUseCase.Execute(ctx.Request.Context(), report.GetRevenueTransactionsInput{
		UserID:    userID,
		DateRange: dateRange,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueTransactionListResponse(output))
}

func (c *RevenueController) parseListParams(ctx *gin.Context) (userID uuid.UUID, dateRange adapter.DateRange, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return userID, dateRange, false
	}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := parseDateParam(startDateStr)
		if err != nil {
			respondInvalidDate(ctx)
			return userID, dateRange, false
		}
		dateRange.Start = &startDate
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := parseDateParam(endDateStr)
		if err != nil {
			respondInvalidDate(ctx)
			return userID, dateRange, false
		}
		dateRange.End = &endDate
	}
	return userID, dateRange, true
}

func respondSourceUnavailable(ctx *gin.Context, source string) {
	ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
		Error: "Failed to load " + source,
		Code:  string(domainerror.ErrCodeSourceFetchFailed),
	})
}
