// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/analytics/internal/application/usecase/settlement"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/dto"
)

// SettlementController handles shared-expense settlement endpoints.
type SettlementController struct {
	settleUseCase *settlement.SettleGroupUseCase
}

// NewSettlementController creates a new settlement controller instance.
func NewSettlementController(settleUseCase *settlement.SettleGroupUseCase) *SettlementController {
	return &SettlementController{
		settleUseCase: settleUseCase,
	}
}

// Settle handles POST /settlements requests.
func (c *SettlementController) Settle(ctx *gin.Context) {
	var req dto.SettleGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSettlementFields),
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid split",
			Code:    string(domainerror.ErrCodeInvalidSplit),
			Details: err.Error(),
		})
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettlementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettleGroupResponse(output))
}

// handleSettlementError handles settlement errors and returns appropriate HTTP responses.
func (c *SettlementController) handleSettlementError(ctx *gin.Context, err error) {
	var settlementErr *domainerror.SettlementError
	if errors.As(err, &settlementErr) {
		statusCode := c.getStatusCodeForSettlementError(settlementErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: settlementErr.Message,
			Code:  string(settlementErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForSettlementError maps settlement error codes to HTTP status codes.
func (c *SettlementController) getStatusCodeForSettlementError(code domainerror.SettlementErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSplit,
		domainerror.ErrCodeInvalidSharedAmount,
		domainerror.ErrCodeMissingSettlementFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnknownMember,
		domainerror.ErrCodeNoMembers,
		domainerror.ErrCodeExactSplitMismatch,
		domainerror.ErrCodePercentageSplitMismatch:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
