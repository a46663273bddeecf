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

// obligationRepository implements the adapter.ObligationRepository interface.
type obligationRepository struct {
	db *gorm.DB
}

// NewObligationRepository creates a new obligation repository instance.
func NewObligationRepository(db *gorm.DB) adapter.ObligationRepository {
	return &obligationRepository{
		db: db,
	}
}

// Create creates a new obligation in the database.
func (r *obligationRepository) Create(ctx context.Context, obligation *entity.Obligation) error {
	obligationModel := model.ObligationFromEntity(obligation)
	result := r.db.WithContext(ctx).Create(obligationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an obligation by its ID.
func (r *obligationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Obligation, error) {
	var obligationModel model.ObligationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&obligationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrObligationNotFound
		}
		return nil, result.Error
	}
	return obligationModel.ToEntity(), nil
}

// FindByUserID retrieves all obligations for a given user ordered by due day.
func (r *obligationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Obligation, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// FindUnpaidByUserID retrieves the unpaid obligations for a given user.
func (r *obligationRepository) FindUnpaidByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Obligation, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ? AND paid = ?", userID, false))
}

// Update updates an existing obligation in the database.
func (r *obligationRepository) Update(ctx context.Context, obligation *entity.Obligation) error {
	obligationModel := model.ObligationFromEntity(obligation)
	result := r.db.WithContext(ctx).Save(obligationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *obligationRepository) find(_ context.Context, query *gorm.DB) ([]*entity.Obligation, error) {
	var obligationModels []model.ObligationModel
	result := query.Order("due_day ASC").Order("name ASC").Find(&obligationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	obligations := make([]*entity.Obligation, len(obligationModels))
	for i, om := range obligationModels {
		obligations[i] = om.ToEntity()
	}
	return obligations, nil
}
