package repositories

import (
	"context"

	"gorm.io/datatypes"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// Create persists a new action item
	Create(ctx context.Context, item *entities.MoMActionItem) error

	// FindByID retrieves an action item by its ID
	FindByID(ctx context.Context, id int) (*entities.MoMActionItem, error)

	// List retrieves action items with filters and pagination, ordered by
	// due date ascending then id descending (same-day items show the most
	// recently created first)
	List(ctx context.Context, filters ActionItemFilters) ([]*entities.MoMActionItem, int64, error)

	// FindByMoMID retrieves all items for a meeting, due date ascending
	FindByMoMID(ctx context.Context, momID int) ([]*entities.MoMActionItem, error)

	// FindByAssignee retrieves items whose original assignee matches,
	// inner-joined with the owning meeting so orphaned items are excluded
	FindByAssignee(ctx context.Context, username string, sort Sort) ([]*entities.MoMActionItem, error)

	// FindOverdue retrieves items due strictly before the given date,
	// regardless of status, due date ascending
	FindOverdue(ctx context.Context, before datatypes.Date) ([]*entities.MoMActionItem, error)

	// FindDueBetween retrieves items due in [from, to] inclusive, due date
	// ascending
	FindDueBetween(ctx context.Context, from, to datatypes.Date) ([]*entities.MoMActionItem, error)

	// FindByReassignee retrieves items whose re_assigned_to matches, with
	// sorting and pagination
	FindByReassignee(ctx context.Context, username string, sort Sort, skip, limit int) ([]*entities.MoMActionItem, int64, error)

	// Update saves the full action item row
	Update(ctx context.Context, item *entities.MoMActionItem) error

	// AppendRemark appends one entry to the item's remark log and stamps
	// updated_at, under a row lock so concurrent appends cannot lose
	// entries. Returns the updated item.
	AppendRemark(ctx context.Context, id int, entry entities.RemarkEntry, updatedAt datatypes.Date) (*entities.MoMActionItem, error)

	// Delete removes one item; returns whether a row existed
	Delete(ctx context.Context, id int) (bool, error)

	// CountByMoMID counts items scoped to a meeting
	CountByMoMID(ctx context.Context, momID int) (int64, error)

	// DeleteByMoMID bulk-deletes a meeting's items and returns the count,
	// captured before the delete executes
	DeleteByMoMID(ctx context.Context, momID int) (int64, error)
}

// ActionItemFilters represents filter options for listing action items.
// Remark is a case-insensitive substring matched against the remark log.
type ActionItemFilters struct {
	MomID        *int
	AssignedTo   string
	DueDate      *datatypes.Date
	UpdatedAt    *datatypes.Date
	Remark       string
	ReAssignedTo string
	Skip         int
	Limit        int
}

// Sort is a validated sort instruction. Field must already be restricted to
// a known column by the caller; repositories interpolate it into ORDER BY.
type Sort struct {
	Field string
	Desc  bool
}
