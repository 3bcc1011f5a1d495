package mom

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

// fakeMoMRepo is an in-memory MoMRepository.
type fakeMoMRepo struct {
	moms   map[int]*entities.MoM
	nextID int
}

func newFakeMoMRepo() *fakeMoMRepo {
	return &fakeMoMRepo{moms: map[int]*entities.MoM{}, nextID: 1}
}

func (f *fakeMoMRepo) Create(_ context.Context, mom *entities.MoM) error {
	mom.ID = f.nextID
	f.nextID++
	f.moms[mom.ID] = mom
	return nil
}

func (f *fakeMoMRepo) FindByID(_ context.Context, id int) (*entities.MoM, error) {
	mom, ok := f.moms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return mom, nil
}

func (f *fakeMoMRepo) List(_ context.Context, _ repositories.MoMFilters) ([]*entities.MoM, int64, error) {
	var out []*entities.MoM
	for i := 1; i < f.nextID; i++ {
		if mom, ok := f.moms[i]; ok {
			out = append(out, mom)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeMoMRepo) FindByProject(_ context.Context, project string) ([]*entities.MoM, error) {
	var out []*entities.MoM
	for i := 1; i < f.nextID; i++ {
		if mom, ok := f.moms[i]; ok && mom.Project == project {
			out = append(out, mom)
		}
	}
	return out, nil
}

func (f *fakeMoMRepo) Update(_ context.Context, mom *entities.MoM) error {
	if _, ok := f.moms[mom.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.moms[mom.ID] = mom
	return nil
}

func (f *fakeMoMRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := f.moms[id]; !ok {
		return false, nil
	}
	delete(f.moms, id)
	return true, nil
}

// fakeChildRepo backs both the information and decision fakes.
type fakeChildRepo[T any] struct {
	byMoM     map[int]int64
	deleteErr error
	deleted   map[int]int64
}

func newFakeChildRepo[T any]() *fakeChildRepo[T] {
	return &fakeChildRepo[T]{byMoM: map[int]int64{}, deleted: map[int]int64{}}
}

func (f *fakeChildRepo[T]) CountByMoMID(_ context.Context, momID int) (int64, error) {
	return f.byMoM[momID], nil
}

func (f *fakeChildRepo[T]) DeleteByMoMID(_ context.Context, momID int) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	n := f.byMoM[momID]
	f.deleted[momID] = n
	delete(f.byMoM, momID)
	return n, nil
}

type fakeInfoRepo struct{ *fakeChildRepo[entities.MoMInformation] }

func (f fakeInfoRepo) Create(context.Context, *entities.MoMInformation) error { return nil }
func (f fakeInfoRepo) FindByID(context.Context, int) (*entities.MoMInformation, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f fakeInfoRepo) List(context.Context, *int, int, int) ([]*entities.MoMInformation, int64, error) {
	return nil, 0, nil
}
func (f fakeInfoRepo) FindByMoMID(context.Context, int) ([]*entities.MoMInformation, error) {
	return nil, nil
}
func (f fakeInfoRepo) Update(context.Context, *entities.MoMInformation) error { return nil }
func (f fakeInfoRepo) Delete(context.Context, int) (bool, error)              { return false, nil }

type fakeDecisionRepo struct{ *fakeChildRepo[entities.MoMDecision] }

func (f fakeDecisionRepo) Create(context.Context, *entities.MoMDecision) error { return nil }
func (f fakeDecisionRepo) FindByID(context.Context, int) (*entities.MoMDecision, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f fakeDecisionRepo) List(context.Context, *int, int, int) ([]*entities.MoMDecision, int64, error) {
	return nil, 0, nil
}
func (f fakeDecisionRepo) FindByMoMID(context.Context, int) ([]*entities.MoMDecision, error) {
	return nil, nil
}
func (f fakeDecisionRepo) Update(context.Context, *entities.MoMDecision) error { return nil }
func (f fakeDecisionRepo) Delete(context.Context, int) (bool, error)           { return false, nil }

type fakeItemsRepo struct{ *fakeChildRepo[entities.MoMActionItem] }

func (f fakeItemsRepo) Create(context.Context, *entities.MoMActionItem) error { return nil }
func (f fakeItemsRepo) FindByID(context.Context, int) (*entities.MoMActionItem, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f fakeItemsRepo) List(context.Context, repositories.ActionItemFilters) ([]*entities.MoMActionItem, int64, error) {
	return nil, 0, nil
}
func (f fakeItemsRepo) FindByMoMID(context.Context, int) ([]*entities.MoMActionItem, error) {
	return nil, nil
}
func (f fakeItemsRepo) FindByAssignee(context.Context, string, repositories.Sort) ([]*entities.MoMActionItem, error) {
	return nil, nil
}
func (f fakeItemsRepo) FindOverdue(context.Context, datatypes.Date) ([]*entities.MoMActionItem, error) {
	return nil, nil
}
func (f fakeItemsRepo) FindDueBetween(context.Context, datatypes.Date, datatypes.Date) ([]*entities.MoMActionItem, error) {
	return nil, nil
}
func (f fakeItemsRepo) FindByReassignee(context.Context, string, repositories.Sort, int, int) ([]*entities.MoMActionItem, int64, error) {
	return nil, 0, nil
}
func (f fakeItemsRepo) Update(context.Context, *entities.MoMActionItem) error { return nil }
func (f fakeItemsRepo) AppendRemark(context.Context, int, entities.RemarkEntry, datatypes.Date) (*entities.MoMActionItem, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f fakeItemsRepo) Delete(context.Context, int) (bool, error) { return false, nil }

// fakeTxManager hands the same stores to fn and records whether the
// transaction would have been rolled back.
type fakeTxManager struct {
	stores     repositories.Stores
	rolledBack bool
}

func (f *fakeTxManager) InTx(_ context.Context, fn func(repositories.Stores) error) error {
	if err := fn(f.stores); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type fixture struct {
	svc       *MoMService
	momRepo   *fakeMoMRepo
	infos     *fakeChildRepo[entities.MoMInformation]
	decisions *fakeChildRepo[entities.MoMDecision]
	items     *fakeChildRepo[entities.MoMActionItem]
	tx        *fakeTxManager
}

func newFixture() *fixture {
	momRepo := newFakeMoMRepo()
	infos := newFakeChildRepo[entities.MoMInformation]()
	decisions := newFakeChildRepo[entities.MoMDecision]()
	items := newFakeChildRepo[entities.MoMActionItem]()

	infoRepo := fakeInfoRepo{infos}
	decisionRepo := fakeDecisionRepo{decisions}
	itemsRepo := fakeItemsRepo{items}

	tx := &fakeTxManager{stores: repositories.Stores{
		MoMs:         momRepo,
		Informations: infoRepo,
		Decisions:    decisionRepo,
		ActionItems:  itemsRepo,
	}}

	return &fixture{
		svc:       NewMoMService(momRepo, infoRepo, decisionRepo, itemsRepo, tx),
		momRepo:   momRepo,
		infos:     infos,
		decisions: decisions,
		items:     items,
		tx:        tx,
	}
}

func clock(t *testing.T, s string) datatypes.Time {
	t.Helper()
	c, err := dates.ParseClock(s)
	if err != nil {
		t.Fatalf("bad clock %q: %v", s, err)
	}
	return c
}

func TestCreateSetsDefaults(t *testing.T) {
	fx := newFixture()

	mom, err := fx.svc.Create(context.Background(), CreateMoMInput{
		StartTime:   clock(t, "09:00"),
		EndTime:     clock(t, "10:00"),
		Attendees:   []string{"alice"},
		Project:     "apollo",
		MeetingType: entities.MeetingTypeOnline,
		CreatedBy:   7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mom.Status != entities.MoMStatusOpen {
		t.Errorf("status = %q, want Open", mom.Status)
	}
	if !dates.Equal(mom.CreatedAt, dates.Today()) {
		t.Error("created_at must be stamped with today")
	}
}

func TestCreateRejectsInvertedTimeWindow(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.Create(context.Background(), CreateMoMInput{
		StartTime: clock(t, "10:00"),
		EndTime:   clock(t, "09:00"),
	})
	if !errors.Is(err, usecaseErrors.ErrInvalidTimeWindow) {
		t.Fatalf("got %v, want ErrInvalidTimeWindow", err)
	}

	_, err = fx.svc.Create(context.Background(), CreateMoMInput{
		StartTime: clock(t, "10:00"),
		EndTime:   clock(t, "10:00"),
	})
	if !errors.Is(err, usecaseErrors.ErrInvalidTimeWindow) {
		t.Fatalf("equal start and end: got %v, want ErrInvalidTimeWindow", err)
	}
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	fx := newFixture()

	mom, err := fx.svc.Create(context.Background(), CreateMoMInput{
		StartTime:   clock(t, "09:00"),
		EndTime:     clock(t, "10:00"),
		Attendees:   []string{"alice", "bob"},
		Project:     "apollo",
		MeetingType: entities.MeetingTypeOnline,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newProject := "artemis"
	updated, err := fx.svc.Update(context.Background(), mom.ID, UpdateMoMInput{Project: &newProject})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Project != "artemis" {
		t.Errorf("project = %q, want artemis", updated.Project)
	}
	if len(updated.Attendees) != 2 {
		t.Error("untouched fields must survive a partial update")
	}

	// A partial update must still respect the time window invariant.
	badEnd := clock(t, "08:00")
	if _, err := fx.svc.Update(context.Background(), mom.ID, UpdateMoMInput{EndTime: &badEnd}); !errors.Is(err, usecaseErrors.ErrInvalidTimeWindow) {
		t.Errorf("got %v, want ErrInvalidTimeWindow", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	fx := newFixture()
	if _, err := fx.svc.Update(context.Background(), 99, UpdateMoMInput{}); !errors.Is(err, usecaseErrors.ErrMoMNotFound) {
		t.Fatalf("got %v, want ErrMoMNotFound", err)
	}
}

func TestDeleteCompleteHappyPath(t *testing.T) {
	fx := newFixture()

	mom, err := fx.svc.Create(context.Background(), CreateMoMInput{
		StartTime: clock(t, "09:00"),
		EndTime:   clock(t, "10:00"),
		Project:   "apollo",
		CreatedBy: 7,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	fx.infos.byMoM[mom.ID] = 3
	fx.decisions.byMoM[mom.ID] = 2
	fx.items.byMoM[mom.ID] = 4

	summary, err := fx.svc.DeleteComplete(context.Background(), mom.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalDeleted() != 9 {
		t.Errorf("total deleted = %d, want 9", summary.TotalDeleted())
	}
	if !summary.AllDeleted() {
		t.Error("expected counts to verify")
	}
	if summary.MoM.Project != "apollo" {
		t.Errorf("summary keeps the deleted meeting, got project %q", summary.MoM.Project)
	}
	if _, ok := fx.momRepo.moms[mom.ID]; ok {
		t.Error("meeting row must be gone")
	}
}

func TestDeleteCompleteNotFound(t *testing.T) {
	fx := newFixture()
	_, err := fx.svc.DeleteComplete(context.Background(), 404)
	if !errors.Is(err, usecaseErrors.ErrMoMNotFound) {
		t.Fatalf("got %v, want ErrMoMNotFound", err)
	}
	if !fx.tx.rolledBack {
		t.Error("failed cascade must roll back")
	}
}

func TestDeleteCompleteRollsBackOnChildError(t *testing.T) {
	fx := newFixture()

	mom, err := fx.svc.Create(context.Background(), CreateMoMInput{
		StartTime: clock(t, "09:00"),
		EndTime:   clock(t, "10:00"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	fx.decisions.deleteErr = errors.New("disk on fire")

	if _, err := fx.svc.DeleteComplete(context.Background(), mom.ID); err == nil {
		t.Fatal("expected error")
	}
	if !fx.tx.rolledBack {
		t.Error("child delete failure must roll the cascade back")
	}
}

func TestDeleteKeepsChildren(t *testing.T) {
	fx := newFixture()

	mom, err := fx.svc.Create(context.Background(), CreateMoMInput{
		StartTime: clock(t, "09:00"),
		EndTime:   clock(t, "10:00"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	fx.infos.byMoM[mom.ID] = 2

	if err := fx.svc.Delete(context.Background(), mom.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fx.infos.byMoM[mom.ID] != 2 {
		t.Error("plain delete must leave child records alone")
	}
}
