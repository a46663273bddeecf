// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/analytics/internal/application/usecase/envelope"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/dto"
)

// EnvelopeController handles savings envelope endpoints.
type EnvelopeController struct {
	projectUseCase  *envelope.ProjectEnvelopesUseCase
	allocateUseCase *envelope.AllocateSurplusUseCase
}

// NewEnvelopeController creates a new envelope controller instance.
func NewEnvelopeController(
	projectUseCase *envelope.ProjectEnvelopesUseCase,
	allocateUseCase *envelope.AllocateSurplusUseCase,
) *EnvelopeController {
	return &EnvelopeController{
		projectUseCase:  projectUseCase,
		allocateUseCase: allocateUseCase,
	}
}

// Project handles POST /envelopes/project requests.
func (c *EnvelopeController) Project(ctx *gin.Context) {
	var req dto.ProjectEnvelopesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respondInvalidBody(ctx, err)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.respondInvalidBody(ctx, err)
		return
	}

	output, err := c.projectUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEnvelopeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectEnvelopesResponse(output))
}

// Allocate handles POST /envelopes/allocate requests.
func (c *EnvelopeController) Allocate(ctx *gin.Context) {
	var req dto.AllocateSurplusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respondInvalidBody(ctx, err)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.respondInvalidBody(ctx, err)
		return
	}

	output, err := c.allocateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEnvelopeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAllocateSurplusResponse(output))
}

func (c *EnvelopeController) respondInvalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  string(domainerror.ErrCodeMissingEnvelopeFields),
	})
}

// handleEnvelopeError handles envelope errors and returns appropriate HTTP responses.
func (c *EnvelopeController) handleEnvelopeError(ctx *gin.Context, err error) {
	var envelopeErr *domainerror.EnvelopeError
	if errors.As(err, &envelopeErr) {
		statusCode := c.getStatusCodeForEnvelopeError(envelopeErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: envelopeErr.Message,
			Code:  string(envelopeErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForEnvelopeError maps envelope error codes to HTTP status codes.
func (c *EnvelopeController) getStatusCodeForEnvelopeError(code domainerror.EnvelopeErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidEnvelopeTarget,
		domainerror.ErrCodeInvalidContributionFrequency,
		domainerror.ErrCodeInvalidSurplusAmount,
		domainerror.ErrCodeMissingEnvelopeFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeDuplicateEnvelopeID:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
