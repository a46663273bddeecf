// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/analytics/internal/application/usecase/risk"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/middleware"
)

// RiskController handles risk assessment endpoints.
type RiskController struct {
	assessUseCase *risk.AssessRiskUseCase
}

// NewRiskController creates a new risk controller instance.
func NewRiskController(assessUseCase *risk.AssessRiskUseCase) *RiskController {
	return &RiskController{
		assessUseCase: assessUseCase,
	}
}

// Assess handles POST /risk requests.
func (c *RiskController) Assess(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.AssessRiskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRiskFields),
		})
		return
	}

	asOf, err := dto.ParseOptionalDate(req.AsOf)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid as_of date",
			Code:    string(domainerror.ErrCodeInvalidAsOfDate),
			Details: err.Error(),
		})
		return
	}

	input := risk.AssessRiskInput{
		UserID:    userID,
		SalaryDay: req.SalaryDay,
		Balance:   req.Balance,
		AsOf:      asOf,
	}

	output, err := c.assessUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRiskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRiskResponse(output))
}

// handleRiskError handles risk errors and returns appropriate HTTP responses.
func (c *RiskController) handleRiskError(ctx *gin.Context, err error) {
	var riskErr *domainerror.RiskError
	if errors.As(err, &riskErr) {
		ctx.JSON(getStatusCodeForRiskError(riskErr.Code), dto.ErrorResponse{
			Error: riskErr.Message,
			Code:  string(riskErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForRiskError maps risk error codes to HTTP status codes.
func getStatusCodeForRiskError(code domainerror.RiskErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSalaryDay,
		domainerror.ErrCodeInvalidAsOfDate,
		domainerror.ErrCodeMissingRiskFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
