// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
	"github.com/finance-tracker/analytics/internal/integration/persistence/model"
)

// planRepository implements the adapter.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance.
func NewPlanRepository(db *gorm.DB) adapter.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// Create stores a plan instance together with its actions and rules in one transaction.
func (r *planRepository) Create(ctx context.Context, plan *entity.PlanWithDetails) error {
	planModel := model.PlanFromEntity(plan)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(planModel).Error
	})
}

// FindByID retrieves a plan with its actions and rules.
func (r *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PlanWithDetails, error) {
	var planModel model.PlanModel
	result := r.withDetails(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// FindByUserID retrieves all plans for a given user, newest first.
func (r *planRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PlanWithDetails, error) {
	var planModels []model.PlanModel
	result := r.withDetails(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.PlanWithDetails, len(planModels))
	for i := range planModels {
		plans[i] = planModels[i].ToEntity()
	}
	return plans, nil
}

// UpdateAction persists the done flag of a single plan action.
func (r *planRepository) UpdateAction(ctx context.Context, action *entity.PlanAction) error {
	result := r.db.WithContext(ctx).
		Model(&model.PlanActionModel{}).
		Where("id = ? AND plan_id = ?", action.ID, action.PlanID).
		Update("done", action.Done)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPlanActionNotFound
	}
	return nil
}

func (r *planRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Actions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Rules", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}
