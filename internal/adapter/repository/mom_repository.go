package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
)

// momRepository implements the MoMRepository interface
type momRepository struct {
	db *gorm.DB
}

// NewMoMRepository creates a new meeting record repository
func NewMoMRepository(db *gorm.DB) repositories.MoMRepository {
	return &momRepository{db: db}
}

// Create persists a new meeting record
func (r *momRepository) Create(ctx context.Context, mom *entities.MoM) error {
	return r.db.WithContext(ctx).Create(mom).Error
}

// FindByID retrieves a meeting by its ID
func (r *momRepository) FindByID(ctx context.Context, id int) (*entities.MoM, error) {
	var mom entities.MoM
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&mom).Error

	if err != nil {
		return nil, err
	}
	mom.NormalizeAttendees()
	return &mom, nil
}

// List retrieves meetings with filters and pagination
func (r *momRepository) List(ctx context.Context, filters repositories.MoMFilters) ([]*entities.MoM, int64, error) {
	var moms []*entities.MoM
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.MoM{})

	// Apply filters
	if filters.Project != "" {
		query = query.Where("project ILIKE ?", fmt.Sprintf("%%%s%%", filters.Project))
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.MeetingType != nil {
		query = query.Where("meeting_type = ?", *filters.MeetingType)
	}
	if filters.MeetingDate != nil {
		query = query.Where("meeting_date = ?", *filters.MeetingDate)
	}
	if filters.CreatedBy != nil {
		query = query.Where("created_by = ?", *filters.CreatedBy)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("meeting_date DESC, created_at DESC").
		Offset(filters.Skip).
		Limit(filters.Limit).
		Find(&moms).Error
	if err != nil {
		return nil, 0, err
	}

	for _, mom := range moms {
		mom.NormalizeAttendees()
	}
	return moms, total, nil
}

// FindByProject retrieves all meetings matching a project substring
func (r *momRepository) FindByProject(ctx context.Context, project string) ([]*entities.MoM, error) {
	var moms []*entities.MoM
	err := r.db.WithContext(ctx).
		Where("project ILIKE ?", fmt.Sprintf("%%%s%%", project)).
		Order("meeting_date DESC").
		Find(&moms).Error
	if err != nil {
		return nil, err
	}

	for _, mom := range moms {
		mom.NormalizeAttendees()
	}
	return moms, nil
}

// Update saves the full meeting row
func (r *momRepository) Update(ctx context.Context, mom *entities.MoM) error {
	return r.db.WithContext(ctx).Save(mom).Error
}

// Delete removes the meeting row only; children are handled by the cascade
// orchestrator.
func (r *momRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&entities.MoM{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
