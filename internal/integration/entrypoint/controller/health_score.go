// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/analytics/internal/application/usecase/health"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/dto"
)

// HealthScoreController handles financial health score endpoints.
type HealthScoreController struct {
	calculateUseCase *health.CalculateHealthScoreUseCase
}

// NewHealthScoreController creates a new health score controller instance.
func NewHealthScoreController(calculateUseCase *health.CalculateHealthScoreUseCase) *HealthScoreController {
	return &HealthScoreController{
		calculateUseCase: calculateUseCase,
	}
}

// Calculate handles POST /health-score requests.
func (c *HealthScoreController) Calculate(ctx *gin.Context) {
	var req dto.HealthScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingProfileFields),
		})
		return
	}

	output, err := c.calculateUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		var healthErr *domainerror.HealthError
		if errors.As(err, &healthErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: healthErr.Message,
				Code:  string(healthErr.Code),
			})
			return
		}
		respondInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHealthScoreResponse(output))
}
