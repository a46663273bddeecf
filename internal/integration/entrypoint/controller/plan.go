// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/application/usecase/plan"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/middleware"
)

// PlanController handles plan and template endpoints.
type PlanController struct {
	createUseCase        *plan.CreatePlanUseCase
	listUseCase          *plan.ListPlansUseCase
	toggleActionUseCase  *plan.TogglePlanActionUseCase
	listTemplatesUseCase *plan.ListTemplatesUseCase
}

// NewPlanController creates a new plan controller instance.
func NewPlanController(
	createUseCase *plan.CreatePlanUseCase,
	listUseCase *plan.ListPlansUseCase,
	toggleActionUseCase *plan.TogglePlanActionUseCase,
	listTemplatesUseCase *plan.ListTemplatesUseCase,
) *PlanController {
	return &PlanController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		toggleActionUseCase:  toggleActionUseCase,
		listTemplatesUseCase: listTemplatesUseCase,
	}
}

// ListTemplates handles GET /templates requests.
// The optional category query parameter filters the catalog.
func (c *PlanController) ListTemplates(ctx *gin.Context) {
	input := plan.ListTemplatesInput{
		Category: entity.PlanCategory(ctx.Query("category")),
	}

	output, err := c.listTemplatesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateListResponse(output))
}

// Create handles POST /plans requests.
func (c *PlanController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingPlanFields),
		})
		return
	}

	startDate, err := dto.ParseOptionalDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid start_date",
			Code:    string(domainerror.ErrCodeInvalidPlanStartDate),
			Details: err.Error(),
		})
		return
	}

	input := plan.CreatePlanInput{
		UserID:     userID,
		TemplateID: req.TemplateID,
		SalaryDay:  req.SalaryDay,
		Balance:    req.Balance,
		StartDate:  startDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreatePlanResponse(output))
}

// List handles GET /plans requests.
func (c *PlanController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), plan.ListPlansInput{UserID: userID})
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanListResponse(output))
}

// ToggleAction handles PATCH /plans/:id/actions/:actionId requests.
func (c *PlanController) ToggleAction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
			Code:  string(domainerror.ErrCodeMissingPlanFields),
		})
		return
	}

	actionID, err := uuid.Parse(ctx.Param("actionId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid action ID format",
			Code:  string(domainerror.ErrCodeMissingPlanFields),
		})
		return
	}

	var req dto.TogglePlanActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingPlanFields),
		})
		return
	}

	input := plan.TogglePlanActionInput{
		UserID:   userID,
		PlanID:   planID,
		ActionID: actionID,
		Done:     *req.Done,
	}

	output, err := c.toggleActionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanActionResponse(output.Action))
}

// handlePlanError handles plan errors and returns appropriate HTTP responses.
// Plan creation also reports risk errors for an invalid salary day.
func (c *PlanController) handlePlanError(ctx *gin.Context, err error) {
	var planErr *domainerror.PlanError
	if errors.As(err, &planErr) {
		statusCode := c.getStatusCodeForPlanError(planErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

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

// getStatusCodeForPlanError maps plan error codes to HTTP status codes.
func (c *PlanController) getStatusCodeForPlanError(code domainerror.PlanErrorCode) int {
	switch code {
	case domainerror.ErrCodePlanTemplateNotFound,
		domainerror.ErrCodePlanNotFound,
		domainerror.ErrCodePlanActionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedPlanAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingPlanFields, domainerror.ErrCodeInvalidPlanStartDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
