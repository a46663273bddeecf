// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/application/usecase/obligation"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/middleware"
)

// ObligationController handles obligation endpoints.
type ObligationController struct {
	createUseCase   *obligation.CreateObligationUseCase
	listUseCase     *obligation.ListObligationsUseCase
	markPaidUseCase *obligation.MarkObligationPaidUseCase
}

// NewObligationController creates a new obligation controller instance.
func NewObligationController(
	createUseCase *obligation.CreateObligationUseCase,
	listUseCase *obligation.ListObligationsUseCase,
	markPaidUseCase *obligation.MarkObligationPaidUseCase,
) *ObligationController {
	return &ObligationController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		markPaidUseCase: markPaidUseCase,
	}
}

// Create handles POST /obligations requests.
func (c *ObligationController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateObligationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingObligationFields),
		})
		return
	}

	input := obligation.CreateObligationInput{
		UserID:   userID,
		Name:     req.Name,
		Amount:   req.Amount,
		DueDay:   req.DueDay,
		Category: entity.ObligationCategory(req.Category),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToObligationResponse(output.Obligation))
}

// List handles GET /obligations requests.
// The optional unpaid query parameter restricts the list to unpaid obligations.
func (c *ObligationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := obligation.ListObligationsInput{UserID: userID}
	if raw := ctx.Query("unpaid"); raw != "" {
		unpaid, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid unpaid filter",
				Code:  string(domainerror.ErrCodeMissingObligationFields),
			})
			return
		}
		input.UnpaidOnly = unpaid
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObligationListResponse(output))
}

// MarkPaid handles PATCH /obligations/:id/paid requests.
func (c *ObligationController) MarkPaid(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
			Code:  string(domainerror.ErrCodeMissingObligationFields),
		})
		return
	}

	var req dto.MarkObligationPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingObligationFields),
		})
		return
	}

	input := obligation.MarkObligationPaidInput{
		UserID:       userID,
		ObligationID: obligationID,
		Paid:         *req.Paid,
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObligationResponse(output.Obligation))
}

// handleObligationError handles obligation errors and returns appropriate HTTP responses.
func (c *ObligationController) handleObligationError(ctx *gin.Context, err error) {
	var obligationErr *domainerror.ObligationError
	if errors.As(err, &obligationErr) {
		statusCode := c.getStatusCodeForObligationError(obligationErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: obligationErr.Message,
			Code:  string(obligationErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForObligationError maps obligation error codes to HTTP status codes.
func (c *ObligationController) getStatusCodeForObligationError(code domainerror.ObligationErrorCode) int {
	switch code {
	case domainerror.ErrCodeObligationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedObligationAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeObligationNameRequired,
		domainerror.ErrCodeInvalidObligationAmount,
		domainerror.ErrCodeInvalidDueDay,
		domainerror.ErrCodeInvalidObligationCategory,
		domainerror.ErrCodeMissingObligationFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
