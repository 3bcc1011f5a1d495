package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
)

// informationRepository implements the InformationRepository interface
type informationRepository struct {
	db *gorm.DB
}

// NewInformationRepository creates a new information note repository
func NewInformationRepository(db *gorm.DB) repositories.InformationRepository {
	return &informationRepository{db: db}
}

func (r *informationRepository) Create(ctx context.Context, info *entities.MoMInformation) error {
	return r.db.WithContext(ctx).Create(info).Error
}

func (r *informationRepository) FindByID(ctx context.Context, id int) (*entities.MoMInformation, error) {
	var info entities.MoMInformation
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&info).Error

	if err != nil {
		return nil, err
	}
	return &info, nil
}

// List retrieves notes newest first with pagination
func (r *informationRepository) List(ctx context.Context, momID *int, skip, limit int) ([]*entities.MoMInformation, int64, error) {
	var infos []*entities.MoMInformation
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.MoMInformation{})
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
		Find(&infos).Error
	return infos, total, err
}

// FindByMoMID retrieves all notes for a meeting in insertion order
func (r *informationRepository) FindByMoMID(ctx context.Context, momID int) ([]*entities.MoMInformation, error) {
	var infos []*entities.MoMInformation
	err := r.db.WithContext(ctx).
		Where("mom_id = ?", momID).
		Find(&infos).Error
	return infos, err
}

func (r *informationRepository) Update(ctx context.Context, info *entities.MoMInformation) error {
	return r.db.WithContext(ctx).Save(info).Error
}

func (r *informationRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&entities.MoMInformation{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *informationRepository) CountByMoMID(ctx context.Context, momID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.MoMInformation{}).
		Where("mom_id = ?", momID).
		Count(&count).Error
	return count, err
}

// DeleteByMoMID counts before deleting; bulk deletes do not report accurate
// row counts on every backend.
func (r *informationRepository) DeleteByMoMID(ctx context.Context, momID int) (int64, error) {
	count, err := r.CountByMoMID(ctx, momID)
	if err != nil {
		return 0, err
	}

	err = r.db.WithContext(ctx).
		Where("mom_id = ?", momID).
		Delete(&entities.MoMInformation{}).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
