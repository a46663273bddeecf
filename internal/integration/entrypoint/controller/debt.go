// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/analytics/internal/application/usecase/debt"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/dto"
)

// DebtController handles debt payoff endpoints.
type DebtController struct {
	simulateUseCase *debt.SimulateDebtsUseCase
	compareUseCase  *debt.CompareStrategiesUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	simulateUseCase *debt.SimulateDebtsUseCase,
	compareUseCase *debt.CompareStrategiesUseCase,
) *DebtController {
	return &DebtController{
		simulateUseCase: simulateUseCase,
		compareUseCase:  compareUseCase,
	}
}

// Simulate handles POST /debts/simulate requests.
func (c *DebtController) Simulate(ctx *gin.Context) {
	var req dto.SimulateDebtsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	output, err := c.simulateUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulateDebtsResponse(output, req.IncludeSchedule))
}

// CompareStrategies handles POST /debts/compare-strategies requests.
func (c *DebtController) CompareStrategies(ctx *gin.Context) {
	var req dto.CompareStrategiesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	input := debt.CompareStrategiesInput{
		Debts:        dto.ToDebts(req.Debts),
		ExtraPayment: req.ExtraPayment,
	}

	output, err := c.compareUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompareStrategiesResponse(output))
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		statusCode := c.getStatusCodeForDebtError(debtErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForDebtError maps debt error codes to HTTP status codes.
func (c *DebtController) getStatusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidStrategy,
		domainerror.ErrCodeInvalidDebtBalance,
		domainerror.ErrCodeInvalidMinPayment,
		domainerror.ErrCodeInvalidExtraPayment,
		domainerror.ErrCodeMissingDebtFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeDuplicateDebtID, domainerror.ErrCodeNoDebts:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
