package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/application/usecase/summary"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
	"github.com/budget-pilot/backend/internal/integration/entrypoint/dto"
	"github.com/budget-pilot/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles monthly summary, analytics and spendability endpoints.
type SummaryController struct {
	buildUseCase     *summary.BuildMonthlySummaryUseCase
	canISpendUseCase *summary.CanISpendUseCase
	analyticsUseCase *summary.GetAnalyticsUseCase
	clock            adapter.Clock
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	buildUseCase *summary.BuildMonthlySummaryUseCase,
	canISpendUseCase *summary.CanISpendUseCase,
	analyticsUseCase *summary.GetAnalyticsUseCase,
	clock adapter.Clock,
) *SummaryController {
	return &SummaryController{
		buildUseCase:     buildUseCase,
		canISpendUseCase: canISpendUseCase,
		analyticsUseCase: analyticsUseCase,
		clock:            clock,
	}
}

// GetSummary handles GET /summary requests. The "month" and "year" query
// parameters select the summarized period; both default to the current
// calendar month.
func (c *SummaryController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	now := c.clock.Now()
	month := int(now.Month())
	year := now.Year()

	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month parameter",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		month = parsed
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year parameter",
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		year = parsed
	}

	output, err := c.buildUseCase.Execute(ctx.Request.Context(), summary.BuildMonthlySummaryInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// CanISpend handles GET /summary/can-i-spend requests. The hypothetical
// amount comes from the "amount" query parameter.
func (c *SummaryController) CanISpend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	amountStr := ctx.Query("amount")
	if amountStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Amount parameter is required",
			Code:  string(domainerror.ErrCodeInvalidSpendAmount),
		})
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount parameter",
			Code:  string(domainerror.ErrCodeInvalidSpendAmount),
		})
		return
	}

	output, err := c.canISpendUseCase.Execute(ctx.Request.Context(), summary.CanISpendInput{
		UserID: userID,
		Amount: amount,
	})
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// GetAnalytics handles GET /analytics requests. The "months_back" query
// parameter selects the trailing window and must be 3, 6 or 12; it defaults
// to 6.
func (c *SummaryController) GetAnalytics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	monthsBack := 6
	if monthsBackStr := ctx.Query("months_back"); monthsBackStr != "" {
		parsed, err := strconv.Atoi(monthsBackStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months_back parameter",
				Code:  string(domainerror.ErrCodeInvalidMonthsBack),
			})
			return
		}
		monthsBack = parsed
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), summary.GetAnalyticsInput{
		UserID:     userID,
		MonthsBack: monthsBack,
	})
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleSummaryError handles summary errors and returns appropriate HTTP responses.
func (c *SummaryController) handleSummaryError(ctx *gin.Context, err error) {
	var summaryErr *domainerror.SummaryError
	if errors.As(err, &summaryErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: summaryErr.Message,
			Code:  string(summaryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
