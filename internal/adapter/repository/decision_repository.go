package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
)

// decisionRepository implements the DecisionRepository interface
type decisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new decision record repository
func NewDecisionRepository(db *gorm.DB) repositories.DecisionRepository {
	return &decisionRepository{db: db}
}

func (r *decisionRepository) Create(ctx context.Context, decision *entities.MoMDecision) error {
	return r.db.WithContext(ctx).Create(decision).Error
}

func (r *decisionRepository) FindByID(ctx context.Context, id int) (*entities.MoMDecision, error) {
	var decision entities.MoMDecision
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&decision).Error

	if err != nil {
		return nil, err
	}
	return &decision, nil
}

// List retrieves decisions newest first with pagination
func (r *decisionRepository) List(ctx context.Context, momID *int, skip, limit int) ([]*entities.MoMDecision, int64, error) {
	var decisions []*entities.MoMDecision
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.MoMDecision{})
	if momID != nil {
		query = query.Where("mom_id = ?", *momID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&decisions).Error
	return decisions, total, err
}

// FindByMoMID retrieves all decisions for a meeting in insertion order
func (r *decisionRepository) FindByMoMID(ctx context.Context, momID int) ([]*entities.MoMDecision, error) {
	var decisions []*entities.MoMDecision
	err := r.db.WithContext(ctx).
		Where("mom_id = ?", momID).
		Find(&decisions).Error
	return decisions, err
}

func (r *decisionRepository) Update(ctx context.Context, decision *entities.MoMDecision) error {
	return r.db.WithContext(ctx).Save(decision).Error
}

func (r *decisionRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&entities.MoMDecision{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *decisionRepository) CountByMoMID(ctx context.Context, momID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.MoMDecision{}).
		Where("mom_id = ?", momID).
		Count(&count).Error
	return count, err
}

// DeleteByMoMID counts before deleting; bulk deletes do not report accurate
// row counts on every backend.
func (r *decisionRepository) DeleteByMoMID(ctx context.Context, momID int) (int64, error) {
	count, err := r.CountByMoMID(ctx, momID)
	if err != nil {
		return 0, err
	}

	err = r.db.WithContext(ctx).
		Where("mom_id = ?", momID).
		Delete(&entities.MoMDecision{}).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
