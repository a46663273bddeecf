// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/analytics/internal/application/usecase/budget"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/dto"
)

// BudgetController handles budget forecast endpoints.
type BudgetController struct {
	forecastUseCase *budget.ForecastBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(forecastUseCase *budget.ForecastBudgetUseCase) *BudgetController {
	return &BudgetController{
		forecastUseCase: forecastUseCase,
	}
}

// Forecast handles POST /budgets/forecast requests.
func (c *BudgetController) Forecast(ctx *gin.Context) {
	var req dto.ForecastBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid date format, expected YYYY-MM-DD",
			Code:    string(domainerror.ErrCodeMissingBudgetFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.forecastUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToForecastBudgetResponse(output))
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidBudgetLimit,
		domainerror.ErrCodeInvalidForecastMethod,
		domainerror.ErrCodeInvalidConfidenceLevel,
		domainerror.ErrCodeInvalidSpendAmount,
		domainerror.ErrCodeInvalidSmoothingAlpha,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidBudgetPeriod:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
