package actionitem

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
	usecaseErrors "github.com/orbitrondev/mom-service/internal/usecase/errors"
	"github.com/orbitrondev/mom-service/pkg/dates"
)

// Sort whitelists per query. Keys are API sort names, values are the columns
// handed to the repository.
var (
	assigneeSortFields = map[string]string{
		"due_date":    "mom_action_item.due_date",
		"status":      "mom_action_item.status",
		"action_item": "mom_action_item.action_item",
	}
	reassigneeSortFields = map[string]string{
		"due_date":     "due_date",
		"status":       "status",
		"updated_at":   "updated_at",
		"meeting_date": "meeting_date",
	}
)

// Service defines the action item use cases
type Service interface {
	Create(ctx context.Context, input CreateInput) (*entities.MoMActionItem, error)
	GetByID(ctx context.Context, id int) (*entities.MoMActionItem, error)
	List(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.MoMActionItem, int64, error)
	GetByMoM(ctx context.Context, momID int) ([]*entities.MoMActionItem, error)
	GetByAssignee(ctx context.Context, username, sortBy, order string) ([]*entities.MoMActionItem, error)
	GetOverdue(ctx context.Context) ([]*entities.MoMActionItem, error)
	GetDueSoon(ctx context.Context, days int) ([]*entities.MoMActionItem, error)
	GetReassigned(ctx context.Context, username, sortBy, order string, skip, limit int) ([]ReassignedItem, int64, error)
	Update(ctx context.Context, id int, input UpdateInput) (*entities.MoMActionItem, error)
	AddRemark(ctx context.Context, id int, text, username string) (*entities.MoMActionItem, error)
	Delete(ctx context.Context, id int) error
	DeleteByMoM(ctx context.Context, momID int) (int64, error)
	Summary(ctx context.Context) (*Summary, error)
}

// ActionItemService handles action item business logic
type ActionItemService struct {
	repo repositories.ActionItemRepository
}

// NewActionItemService creates a new action item service
func NewActionItemService(repo repositories.ActionItemRepository) *ActionItemService {
	return &ActionItemService{repo: repo}
}

// CreateInput represents input for creating an action item. Project and
// MeetingDate are the denormalized copies of the owning meeting's fields.
type CreateInput struct {
	MomID       int
	ActionItem  string
	AssignedTo  string
	DueDate     datatypes.Date
	Status      entities.ActionItemStatus
	Project     string
	MeetingDate datatypes.Date
	Remarks     []entities.RemarkEntry
}

// UpdateInput carries a partial update; nil fields are left untouched.
// Remarks is the one exception to overwrite semantics: entries are appended
// to the existing log, never replacing it.
type UpdateInput struct {
	ActionItem   *string
	AssignedTo   *string
	DueDate      *datatypes.Date
	Status       *entities.ActionItemStatus
	Remarks      []entities.RemarkEntry
	ReAssignedTo *string
}

// ReassignedItem is an action item enriched with its remark breakdown for
// the reassignment report.
type ReassignedItem struct {
	Item          *entities.MoMActionItem
	RemarkCount   int
	LatestRemark  *entities.RemarkEntry
	RemarksByUser map[string][]entities.RemarkEntry
}

// Summary is the combined overdue / due-soon reporting view.
type Summary struct {
	OverdueCount int
	DueSoonCount int
	OverdueItems []*entities.MoMActionItem
	DueSoonItems []*entities.MoMActionItem
}

// Create persists a new action item; a missing remark log starts empty
func (s *ActionItemService) Create(ctx context.Context, input CreateInput) (*entities.MoMActionItem, error) {
	if input.MomID <= 0 {
		return nil, usecaseErrors.ErrInvalidMeetingID
	}

	status := input.Status
	if status == "" {
		status = entities.ActionItemStatusPending
	}

	item := &entities.MoMActionItem{
		MomID:       input.MomID,
		Project:     input.Project,
		ActionItem:  input.ActionItem,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
		Status:      status,
		Remarks:     datatypes.JSONSlice[entities.RemarkEntry](input.Remarks),
		MeetingDate: input.MeetingDate,
	}
	item.NormalizeRemarks()

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create action item: %w", err)
	}
	return item, nil
}

// GetByID retrieves an action item by ID
func (s *ActionItemService) GetByID(ctx context.Context, id int) (*entities.MoMActionItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to get action item: %w", err)
	}
	return item, nil
}

// List retrieves action items with filters and pagination
func (s *ActionItemService) List(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.MoMActionItem, int64, error) {
	if filters.Skip < 0 {
		return nil, 0, usecaseErrors.ErrInvalidSkip
	}
	if filters.Limit < 1 || filters.Limit > 100 {
		return nil, 0, usecaseErrors.ErrInvalidLimit
	}

	items, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, total, nil
}

// GetByMoM retrieves all items for a meeting
func (s *ActionItemService) GetByMoM(ctx context.Context, momID int) ([]*entities.MoMActionItem, error) {
	items, err := s.repo.FindByMoMID(ctx, momID)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// GetByAssignee retrieves items by original assignee
func (s *ActionItemService) GetByAssignee(ctx context.Context, username, sortBy, order string) ([]*entities.MoMActionItem, error) {
	sort, err := resolveSort(assigneeSortFields, sortBy, order)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindByAssignee(ctx, username, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items by assignee: %w", err)
	}
	return items, nil
}

// GetOverdue retrieves items due strictly before today. Status is not
// consulted; a Completed item past its due date still counts as overdue.
func (s *ActionItemService) GetOverdue(ctx context.Context) ([]*entities.MoMActionItem, error) {
	items, err := s.repo.FindOverdue(ctx, dates.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue action items: %w", err)
	}
	return items, nil
}

// GetDueSoon retrieves items due within [today, today+days] inclusive
func (s *ActionItemService) GetDueSoon(ctx context.Context, days int) ([]*entities.MoMActionItem, error) {
	if days < 1 || days > 30 {
		return nil, usecaseErrors.ErrInvalidDays
	}

	today := dates.Today()
	items, err := s.repo.FindDueBetween(ctx, today, dates.AddDays(today, days))
	if err != nil {
		return nil, fmt.Errorf("failed to list due-soon action items: %w", err)
	}
	return items, nil
}

// GetReassigned retrieves items by current assignee with the per-item remark
// breakdown: count, latest entry, and entries grouped by author.
func (s *ActionItemService) GetReassigned(ctx context.Context, username, sortBy, order string, skip, limit int) ([]ReassignedItem, int64, error) {
	if skip < 0 {
		return nil, 0, usecaseErrors.ErrInvalidSkip
	}
	if limit < 1 || limit > 100 {
		return nil, 0, usecaseErrors.ErrInvalidLimit
	}
	sort, err := resolveSort(reassigneeSortFields, sortBy, order)
	if err != nil {
		return nil, 0, err
	}

	items, total, err := s.repo.FindByReassignee(ctx, username, sort, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reassigned action items: %w", err)
	}

	enriched := make([]ReassignedItem, 0, len(items))
	for _, item := range items {
		entry := ReassignedItem{
			Item:          item,
			RemarkCount:   len(item.Remarks),
			RemarksByUser: item.RemarksByUser(),
		}
		if latest, ok := item.LatestRemark(); ok {
			entry.LatestRemark = &latest
		}
		enriched = append(enriched, entry)
	}
	return enriched, total, nil
}

// Update applies a partial update. Every provided field overwrites the
// stored value except Remarks, which extends the log. updated_at is stamped
// with today regardless of which fields changed.
func (s *ActionItemService) Update(ctx context.Context, id int, input UpdateInput) (*entities.MoMActionItem, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ActionItem != nil {
		item.ActionItem = *input.ActionItem
	}
	if input.AssignedTo != nil {
		item.AssignedTo = *input.AssignedTo
	}
	if input.DueDate != nil {
		item.DueDate = *input.DueDate
	}
	if input.Status != nil {
		item.Status = *input.Status
	}
	if input.ReAssignedTo != nil {
		item.ReAssignedTo = input.ReAssignedTo
	}
	if len(input.Remarks) > 0 {
		item.AppendRemarks(input.Remarks)
	}

	today := dates.Today()
	item.UpdatedAt = &today

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return item, nil
}

// AddRemark appends one remark entry dated today and stamps updated_at
func (s *ActionItemService) AddRemark(ctx context.Context, id int, text, username string) (*entities.MoMActionItem, error) {
	if strings.TrimSpace(text) == "" {
		return nil, usecaseErrors.ErrEmptyRemarkText
	}
	if strings.TrimSpace(username) == "" {
		return nil, usecaseErrors.ErrEmptyRemarkAuthor
	}

	today := dates.Today()
	entry := entities.RemarkEntry{
		Text:       strings.TrimSpace(text),
		By:         strings.TrimSpace(username),
		RemarkDate: dates.Format(today),
	}

	item, err := s.repo.AppendRemark(ctx, id, entry, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to add remark: %w", err)
	}
	return item, nil
}

// Delete removes one action item
func (s *ActionItemService) Delete(ctx context.Context, id int) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete action item: %w", err)
	}
	if !existed {
		return usecaseErrors.ErrActionItemNotFound
	}
	return nil
}

// DeleteByMoM removes all items for a meeting and returns how many existed
func (s *ActionItemService) DeleteByMoM(ctx context.Context, momID int) (int64, error) {
	count, err := s.repo.DeleteByMoMID(ctx, momID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete action items: %w", err)
	}
	return count, nil
}

// Summary composes the overdue and due-within-7-days views
func (s *ActionItemService) Summary(ctx context.Context) (*Summary, error) {
	overdue, err := s.GetOverdue(ctx)
	if err != nil {
		return nil, err
	}
	dueSoon, err := s.GetDueSoon(ctx, 7)
	if err != nil {
		return nil, err
	}

	return &Summary{
		OverdueCount: len(overdue),
		DueSoonCount: len(dueSoon),
		OverdueItems: overdue,
		DueSoonItems: dueSoon,
	}, nil
}

// resolveSort validates a sort request against a whitelist. Empty values
// fall back to due_date ascending.
func resolveSort(fields map[string]string, sortBy, order string) (repositories.Sort, error) {
	if sortBy == "" {
		sortBy = "due_date"
	}
	column, ok := fields[sortBy]
	if !ok {
		return repositories.Sort{}, usecaseErrors.ErrInvalidSortField
	}

	switch order {
	case "", "asc":
		return repositories.Sort{Field: column}, nil
	case "desc":
		return repositories.Sort{Field: column, Desc: true}, nil
	default:
		return repositories.Sort{}, usecaseErrors.ErrInvalidSortOrder
	}
}
