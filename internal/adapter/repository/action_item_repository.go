package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// Create persists a new action item
func (r *actionItemRepository) Create(ctx context.Context, item *entities.MoMActionItem) error {
	item.NormalizeRemarks()
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID retrieves an action item by its ID
func (r *actionItemRepository) FindByID(ctx context.Context, id int) (*entities.MoMActionItem, error) {
	var item entities.MoMActionItem
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error

	if err != nil {
		return nil, err
	}
	item.NormalizeRemarks()
	return &item, nil
}

// List retrieves action items with filters and pagination. Items due on the
// same date come back most-recently-created first.
func (r *actionItemRepository) List(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.MoMActionItem, int64, error) {
	var items []*entities.MoMActionItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.MoMActionItem{})

	// Apply filters
	if filters.MomID != nil {
		query = query.Where("mom_id = ?", *filters.MomID)
	}
	if filters.AssignedTo != "" {
		query = query.Where("assigned_to = ?", filters.AssignedTo)
	}
	if filters.DueDate != nil {
		query = query.Where("due_date = ?", *filters.DueDate)
	}
	if filters.UpdatedAt != nil {
		query = query.Where("updated_at = ?", *filters.UpdatedAt)
	}
	if filters.Remark != "" {
		query = query.Where("remark::text ILIKE ?", fmt.Sprintf("%%%s%%", filters.Remark))
	}
	if filters.ReAssignedTo != "" {
		query = query.Where("re_assigned_to = ?", filters.ReAssignedTo)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("due_date ASC, id DESC").
		Offset(filters.Skip).
		Limit(filters.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	normalizeAll(items)
	return items, total, nil
}

// FindByMoMID retrieves all items for a meeting, due date ascending
func (r *actionItemRepository) FindByMoMID(ctx context.Context, momID int) ([]*entities.MoMActionItem, error) {
	var items []*entities.MoMActionItem
	err := r.db.WithContext(ctx).
		Where("mom_id = ?", momID).
		Order("due_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	normalizeAll(items)
	return items, nil
}

// FindByAssignee retrieves items by original assignee. The inner join on the
// owning meeting silently excludes items whose meeting no longer exists; the
// project label comes from the denormalized action item column, not the join.
func (r *actionItemRepository) FindByAssignee(ctx context.Context, username string, sort repositories.Sort) ([]*entities.MoMActionItem, error) {
	var items []*entities.MoMActionItem
	err := r.db.WithContext(ctx).
		Model(&entities.MoMActionItem{}).
		Joins("INNER JOIN mom ON mom.id = mom_action_item.mom_id").
		Where("mom_action_item.assigned_to = ?", username).
		Order(orderClause(sort)).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	normalizeAll(items)
	return items, nil
}

// FindOverdue retrieves items due strictly before the given date
func (r *actionItemRepository) FindOverdue(ctx context.Context, before datatypes.Date) ([]*entities.MoMActionItem, error) {
	var items []*entities.MoMActionItem
	err := r.db.WithContext(ctx).
		Where("due_date < ?", before).
		Order("due_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	normalizeAll(items)
	return items, nil
}

// FindDueBetween retrieves items due in [from, to] inclusive
func (r *actionItemRepository) FindDueBetween(ctx context.Context, from, to datatypes.Date) ([]*entities.MoMActionItem, error) {
	var items []*entities.MoMActionItem
	err := r.db.WithContext(ctx).
		Where("due_date >= ? AND due_date <= ?", from, to).
		Order("due_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	normalizeAll(items)
	return items, nil
}

// FindByReassignee retrieves items by current (reassigned) assignee with
// sorting and pagination
func (r *actionItemRepository) FindByReassignee(ctx context.Context, username string, sort repositories.Sort, skip, limit int) ([]*entities.MoMActionItem, int64, error) {
	var items []*entities.MoMActionItem
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entities.MoMActionItem{}).
		Where("re_assigned_to = ?", username)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order(orderClause(sort)).
		Offset(skip).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	normalizeAll(items)
	return items, total, nil
}

// Update saves the full action item row
func (r *actionItemRepository) Update(ctx context.Context, item *entities.MoMActionItem) error {
	item.NormalizeRemarks()
	return r.db.WithContext(ctx).Save(item).Error
}

// AppendRemark appends one remark entry under a row lock. The read-modify-
// write on the jsonb column would lose updates under concurrent writers
// without the lock.
func (r *actionItemRepository) AppendRemark(ctx context.Context, id int, entry entities.RemarkEntry, updatedAt datatypes.Date) (*entities.MoMActionItem, error) {
	var item entities.MoMActionItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&item).Error; err != nil {
			return err
		}

		item.NormalizeRemarks()
		item.AppendRemark(entry)
		item.UpdatedAt = &updatedAt

		return tx.Model(&item).Updates(map[string]interface{}{
			"remark":     item.Remarks,
			"updated_at": updatedAt,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes one item
func (r *actionItemRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&entities.MoMActionItem{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *actionItemRepository) CountByMoMID(ctx context.Context, momID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.MoMActionItem{}).
		Where("mom_id = ?", momID).
		Count(&count).Error
	return count, err
}

// DeleteByMoMID counts before deleting; bulk deletes do not report accurate
// row counts on every backend.
func (r *actionItemRepository) DeleteByMoMID(ctx context.Context, momID int) (int64, error) {
	count, err := r.CountByMoMID(ctx, momID)
	if err != nil {
		return 0, err
	}

	err = r.db.WithContext(ctx).
		Where("mom_id = ?", momID).
		Delete(&entities.MoMActionItem{}).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// orderClause renders a validated Sort into ORDER BY SQL. Sort fields are
// whitelisted at the usecase layer before they reach here.
func orderClause(sort repositories.Sort) string {
	direction := "ASC"
	if sort.Desc {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s", sort.Field, direction)
}

func normalizeAll(items []*entities.MoMActionItem) {
	for _, item := range items {
		item.NormalizeRemarks()
	}
}
