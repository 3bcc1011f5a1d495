package actionitem

import (
	"context"
	"errors"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
	usecaseErrors "github.com/orbitrondev/mom-service/internal/usecase/errors"
	"github.com/orbitrondev/mom-service/pkg/dates"
)

// fakeActionItemRepo is an in-memory ActionItemRepository for service tests.
type fakeActionItemRepo struct {
	items  map[int]*entities.MoMActionItem
	nextID int

	lastSort     repositories.Sort
	lastOverdue  datatypes.Date
	lastDueFrom  datatypes.Date
	lastDueTo    datatypes.Date
	appendFailed error
}

func newFakeActionItemRepo() *fakeActionItemRepo {
	return &fakeActionItemRepo{items: map[int]*entities.MoMActionItem{}, nextID: 1}
}

func (f *fakeActionItemRepo) Create(_ context.Context, item *entities.MoMActionItem) error {
	item.ID = f.nextID
	f.nextID++
	f.items[item.ID] = item
	return nil
}

func (f *fakeActionItemRepo) FindByID(_ context.Context, id int) (*entities.MoMActionItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeActionItemRepo) List(_ context.Context, _ repositories.ActionItemFilters) ([]*entities.MoMActionItem, int64, error) {
	out := f.all()
	return out, int64(len(out)), nil
}

func (f *fakeActionItemRepo) FindByMoMID(_ context.Context, momID int) ([]*entities.MoMActionItem, error) {
	var out []*entities.MoMActionItem
	for _, item := range f.all() {
		if item.MomID == momID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeActionItemRepo) FindByAssignee(_ context.Context, username string, sort repositories.Sort) ([]*entities.MoMActionItem, error) {
	f.lastSort = sort
	var out []*entities.MoMActionItem
	for _, item := range f.all() {
		if item.AssignedTo == username {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeActionItemRepo) FindOverdue(_ context.Context, before datatypes.Date) ([]*entities.MoMActionItem, error) {
	f.lastOverdue = before
	var out []*entities.MoMActionItem
	for _, item := range f.all() {
		if dates.Before(item.DueDate, before) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeActionItemRepo) FindDueBetween(_ context.Context, from, to datatypes.Date) ([]*entities.MoMActionItem, error) {
	f.lastDueFrom, f.lastDueTo = from, to
	var out []*entities.MoMActionItem
	for _, item := range f.all() {
		if !dates.Before(item.DueDate, from) && !dates.After(item.DueDate, to) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeActionItemRepo) FindByReassignee(_ context.Context, username string, sort repositories.Sort, _, _ int) ([]*entities.MoMActionItem, int64, error) {
	f.lastSort = sort
	var out []*entities.MoMActionItem
	for _, item := range f.all() {
		if item.ReAssignedTo != nil && *item.ReAssignedTo == username {
			out = append(out, item)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeActionItemRepo) Update(_ context.Context, item *entities.MoMActionItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeActionItemRepo) AppendRemark(_ context.Context, id int, entry entities.RemarkEntry, updatedAt datatypes.Date) (*entities.MoMActionItem, error) {
	if f.appendFailed != nil {
		return nil, f.appendFailed
	}
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	item.NormalizeRemarks()
	item.AppendRemark(entry)
	item.UpdatedAt = &updatedAt
	return item, nil
}

func (f *fakeActionItemRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeActionItemRepo) CountByMoMID(_ context.Context, momID int) (int64, error) {
	var n int64
	for _, item := range f.items {
		if item.MomID == momID {
			n++
		}
	}
	return n, nil
}

func (f *fakeActionItemRepo) DeleteByMoMID(_ context.Context, momID int) (int64, error) {
	var n int64
	for id, item := range f.items {
		if item.MomID == momID {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeActionItemRepo) all() []*entities.MoMActionItem {
	out := make([]*entities.MoMActionItem, 0, len(f.items))
	for i := 1; i < f.nextID; i++ {
		if item, ok := f.items[i]; ok {
			out = append(out, item)
		}
	}
	return out
}

func mustDate(t *testing.T, s string) datatypes.Date {
	t.Helper()
	d, err := dates.Parse(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestCreateDefaultsStatusAndRemarks(t *testing.T) {
	repo := newFakeActionItemRepo()
	svc := NewActionItemService(repo)

	item, err := svc.Create(context.Background(), CreateInput{
		MomID:      1,
		ActionItem: "ship release",
		AssignedTo: "alice",
		DueDate:    mustDate(t, "2026-09-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Status != entities.ActionItemStatusPending {
		t.Errorf("status = %q, want Pending", item.Status)
	}
	if item.Remarks == nil {
		t.Error("remark log must start empty, not nil")
	}
}

func TestCreateRejectsBadMeetingID(t *testing.T) {
	svc := NewActionItemService(newFakeActionItemRepo())

	_, err := svc.Create(context.Background(), CreateInput{MomID: 0})
	if !errors.Is(err, usecaseErrors.ErrInvalidMeetingID) {
		t.Fatalf("got %v, want ErrInvalidMeetingID", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewActionItemService(newFakeActionItemRepo())

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, usecaseErrors.ErrActionItemNotFound) {
		t.Fatalf("got %v, want ErrActionItemNotFound", err)
	}
}

func TestGetDueSoonValidatesWindow(t *testing.T) {
	repo := newFakeActionItemRepo()
	svc := NewActionItemService(repo)

	for _, days := range []int{0, -1, 31} {
		if _, err := svc.GetDueSoon(context.Background(), days); !errors.Is(err, usecaseErrors.ErrInvalidDays) {
			t.Errorf("days=%d: got %v, want ErrInvalidDays", days, err)
		}
	}

	if _, err := svc.GetDueSoon(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	today := dates.Today()
	if !dates.Equal(repo.lastDueFrom, today) {
		t.Errorf("window start = %v, want today", repo.lastDueFrom)
	}
	if !dates.Equal(repo.lastDueTo, dates.AddDays(today, 7)) {
		t.Errorf("window end = %v, want today+7", repo.lastDueTo)
	}
}

func TestGetByAssigneeSortWhitelist(t *testing.T) {
	repo := newFakeActionItemRepo()
	svc := NewActionItemService(repo)

	if _, err := svc.GetByAssignee(context.Background(), "alice", "remark", "asc"); !errors.Is(err, usecaseErrors.ErrInvalidSortField) {
		t.Errorf("got %v, want ErrInvalidSortField", err)
	}
	if _, err := svc.GetByAssignee(context.Background(), "alice", "due_date", "sideways"); !errors.Is(err, usecaseErrors.ErrInvalidSortOrder) {
		t.Errorf("got %v, want ErrInvalidSortOrder", err)
	}

	if _, err := svc.GetByAssignee(context.Background(), "alice", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastSort.Field != "mom_action_item.due_date" || repo.lastSort.Desc {
		t.Errorf("default sort = %+v, want due_date asc", repo.lastSort)
	}

	if _, err := svc.GetByAssignee(context.Background(), "alice", "status", "desc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastSort.Field != "mom_action_item.status" || !repo.lastSort.Desc {
		t.Errorf("sort = %+v, want status desc", repo.lastSort)
	}
}

func TestUpdateAppendsRemarksAndStampsDate(t *testing.T) {
	repo := newFakeActionItemRepo()
	svc := NewActionItemService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		MomID:      1,
		ActionItem: "draft report",
		AssignedTo: "alice",
		DueDate:    mustDate(t, "2026-09-01"),
		Remarks:    []entities.RemarkEntry{{Text: "kickoff", By: "alice", RemarkDate: "2026-08-01"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newAssignee := "bob"
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{
		ReAssignedTo: &newAssignee,
		Remarks:      []entities.RemarkEntry{{Text: "handover", By: "bob", RemarkDate: "2026-08-15"}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(updated.Remarks) != 2 {
		t.Fatalf("remark log length = %d, want 2 (append, not replace)", len(updated.Remarks))
	}
	if updated.Remarks[0].Text != "kickoff" || updated.Remarks[1].Text != "handover" {
		t.Error("remark log must preserve existing entries before appended ones")
	}
	if updated.AssignedTo != "alice" {
		t.Errorf("original assignee changed to %q", updated.AssignedTo)
	}
	if updated.ReAssignedTo == nil || *updated.ReAssignedTo != "bob" {
		t.Error("re_assigned_to not applied")
	}
	if updated.UpdatedAt == nil || !dates.Equal(*updated.UpdatedAt, dates.Today()) {
		t.Error("updated_at must be stamped with today")
	}
}

func TestAddRemark(t *testing.T) {
	repo := newFakeActionItemRepo()
	svc := NewActionItemService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		MomID:      1,
		ActionItem: "review PR",
		AssignedTo: "alice",
		DueDate:    mustDate(t, "2026-09-01"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.AddRemark(context.Background(), created.ID, "  ", "alice"); !errors.Is(err, usecaseErrors.ErrEmptyRemarkText) {
		t.Errorf("got %v, want ErrEmptyRemarkText", err)
	}
	if _, err := svc.AddRemark(context.Background(), created.ID, "done", ""); !errors.Is(err, usecaseErrors.ErrEmptyRemarkAuthor) {
		t.Errorf("got %v, want ErrEmptyRemarkAuthor", err)
	}

	item, err := svc.AddRemark(context.Background(), created.ID, "  looks good  ", " alice ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry := item.Remarks[len(item.Remarks)-1]
	if entry.Text != "looks good" || entry.By != "alice" {
		t.Errorf("entry = %+v, want trimmed text and author", entry)
	}
	if entry.RemarkDate != dates.Format(dates.Today()) {
		t.Errorf("remark date = %q, want today", entry.RemarkDate)
	}

	if _, err := svc.AddRemark(context.Background(), 999, "text", "alice"); !errors.Is(err, usecaseErrors.ErrActionItemNotFound) {
		t.Errorf("got %v, want ErrActionItemNotFound", err)
	}
}

func TestGetReassignedEnrichment(t *testing.T) {
	repo := newFakeActionItemRepo()
	svc := NewActionItemService(repo)

	bob := "bob"
	repo.items[1] = &entities.MoMActionItem{
		ID:           1,
		MomID:        1,
		ActionItem:   "migrate database",
		AssignedTo:   "alice",
		ReAssignedTo: &bob,
		DueDate:      mustDate(t, "2026-09-01"),
		Status:       entities.ActionItemStatusInProgress,
		Remarks: datatypes.JSONSlice[entities.RemarkEntry]{
			{Text: "started", By: "alice", RemarkDate: "2026-08-01"},
			{Text: "handed over", By: "bob", RemarkDate: "2026-08-10"},
		},
	}
	repo.nextID = 2

	items, total, err := svc.GetReassigned(context.Background(), "bob", "", "", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("got %d items (total %d), want 1", len(items), total)
	}

	enriched := items[0]
	if enriched.RemarkCount != 2 {
		t.Errorf("remark count = %d, want 2", enriched.RemarkCount)
	}
	if enriched.LatestRemark == nil || enriched.LatestRemark.Text != "handed over" {
		t.Error("latest remark must be the most recent entry")
	}
	if len(enriched.RemarksByUser["alice"]) != 1 || len(enriched.RemarksByUser["bob"]) != 1 {
		t.Errorf("remarks by user = %v", enriched.RemarksByUser)
	}

	if _, _, err := svc.GetReassigned(context.Background(), "bob", "", "", -1, 10); !errors.Is(err, usecaseErrors.ErrInvalidSkip) {
		t.Errorf("got %v, want ErrInvalidSkip", err)
	}
	if _, _, err := svc.GetReassigned(context.Background(), "bob", "", "", 0, 0); !errors.Is(err, usecaseErrors.ErrInvalidLimit) {
		t.Errorf("got %v, want ErrInvalidLimit", err)
	}
}

func TestSummaryCountsMatchItems(t *testing.T) {
	repo := newFakeActionItemRepo()
	svc := NewActionItemService(repo)

	today := dates.Today()
	repo.items[1] = &entities.MoMActionItem{ID: 1, MomID: 1, DueDate: dates.AddDays(today, -3), Status: entities.ActionItemStatusCompleted}
	repo.items[2] = &entities.MoMActionItem{ID: 2, MomID: 1, DueDate: dates.AddDays(today, 2)}
	repo.items[3] = &entities.MoMActionItem{ID: 3, MomID: 1, DueDate: dates.AddDays(today, 20)}
	repo.nextID = 4

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Overdue counts by due date alone, so the Completed item is included.
	if summary.OverdueCount != 1 || len(summary.OverdueItems) != 1 {
		t.Errorf("overdue = %d, want 1", summary.OverdueCount)
	}
	if summary.DueSoonCount != 1 || len(summary.DueSoonItems) != 1 {
		t.Errorf("due soon = %d, want 1", summary.DueSoonCount)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewActionItemService(newFakeActionItemRepo())
	if err := svc.Delete(context.Background(), 5); !errors.Is(err, usecaseErrors.ErrActionItemNotFound) {
		t.Fatalf("got %v, want ErrActionItemNotFound", err)
	}
}
