package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-pulse/backend/internal/application/usecase/report"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/dto"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	summaryUseCase    *report.GetSummaryUseCase
	monthlyUseCase    *report.GetMonthlyReportUseCase
	profitLossUseCase *report.GetProfitLossUseCase
	forecastUseCase   *report.GetForecastUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *report.GetSummaryUseCase,
	monthlyUseCase *report.GetMonthlyReportUseCase,
	profitLossUseCase *report.GetProfitLossUseCase,
	forecastUseCase *report.GetForecastUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:    summaryUseCase,
		monthlyUseCase:    monthlyUseCase,
		profitLossUseCase: profitLossUseCase,
		forecastUseCase:   forecastUseCase,
	}
}

// Summary handles GET /api/v1/dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Monthly handles GET /api/v1/dashboard/monthly requests.
func (c *DashboardController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), report.GetMonthlyReportInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output))
}

// ProfitLoss handles GET /api/v1/dashboard/profit-loss requests.
func (c *DashboardController) ProfitLoss(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	output, err := c.profitLossUseCase.Execute(ctx.Request.Context(), report.GetProfitLossInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitLossResponse(output))
}

// Forecast handles GET /api/v1/dashboard/forecast requests.
func (c *DashboardController) Forecast(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	output, err := c.forecastUseCase.Execute(ctx.Request.Context(), report.GetForecastInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToForecastResponse(output))
}

// handleDashboardError maps dashboard errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		status := http.StatusInternalServerError
		switch dashErr.Code {
		case domainerror.ErrCodeInvalidYear, domainerror.ErrCodeInvalidDateFormat:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// parseYearParam reads the optional year query parameter, defaulting to the
// current calendar year.
func parseYearParam(ctx *gin.Context) (int, bool) {
	yearStr := ctx.Query("year")
	if yearStr == "" {
		return time.Now().UTC().Year(), true
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year",
			Code:  string(domainerror.ErrCodeInvalidYear),
		})
		return 0, false
	}
	return year, true
}
