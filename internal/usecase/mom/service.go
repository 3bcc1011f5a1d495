package mom

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
	usecaseErrors "github.com/orbitrondev/mom-service/internal/usecase/errors"
	"github.com/orbitrondev/mom-service/pkg/dates"
)

// Service defines the meeting record use cases
type Service interface {
	Create(ctx context.Context, input CreateMoMInput) (*entities.MoM, error)
	GetByID(ctx context.Context, id int) (*entities.MoM, error)
	List(ctx context.Context, filters repositories.MoMFilters) ([]*entities.MoM, int64, error)
	GetByProject(ctx context.Context, project string) ([]*entities.MoM, error)
	Update(ctx context.Context, id int, input UpdateMoMInput) (*entities.MoM, error)
	UpdateStatus(ctx context.Context, id int, status entities.MoMStatus) (*entities.MoM, error)
	Delete(ctx context.Context, id int) error
	GetComplete(ctx context.Context, id int) (*CompleteMoM, error)
	DeleteComplete(ctx context.Context, id int) (*DeletionSummary, error)
}

// MoMService handles meeting record business logic
type MoMService struct {
	momRepo    repositories.MoMRepository
	infoRepo   repositories.InformationRepository
	decRepo    repositories.DecisionRepository
	actionRepo repositories.ActionItemRepository
	tx         repositories.TxManager
}

// NewMoMService creates a new meeting record service
func NewMoMService(
	momRepo repositories.MoMRepository,
	infoRepo repositories.InformationRepository,
	decRepo repositories.DecisionRepository,
	actionRepo repositories.ActionItemRepository,
	tx repositories.TxManager,
) *MoMService {
	return &MoMService{
		momRepo:    momRepo,
		infoRepo:   infoRepo,
		decRepo:    decRepo,
		actionRepo: actionRepo,
		tx:         tx,
	}
}

// CreateMoMInput represents input for creating a meeting record
type CreateMoMInput struct {
	MeetingDate    datatypes.Date
	StartTime      datatypes.Time
	EndTime        datatypes.Time
	Attendees      []string
	Absent         []string
	OuterAttendees []string
	Project        string
	MeetingType    entities.MeetingType
	LocationLink   string
	Status         entities.MoMStatus
	CreatedBy      int
}

// UpdateMoMInput carries a partial update; nil fields are left untouched.
type UpdateMoMInput struct {
	MeetingDate    *datatypes.Date
	StartTime      *datatypes.Time
	EndTime        *datatypes.Time
	Attendees      *[]string
	Absent         *[]string
	OuterAttendees *[]string
	Project        *string
	MeetingType    *entities.MeetingType
	LocationLink   *string
	Status         *entities.MoMStatus
}

// CompleteMoM is the full meeting view with all child records.
type CompleteMoM struct {
	MoM          *entities.MoM
	Informations []*entities.MoMInformation
	Decisions    []*entities.MoMDecision
	ActionItems  []*entities.MoMActionItem
}

// DeletionSummary reports the outcome of a cascade delete. Expected counts
// were captured before the deletes ran; Deleted counts are what the delete
// operations reported.
type DeletionSummary struct {
	MoM                  *entities.MoM
	ExpectedInformations int64
	ExpectedDecisions    int64
	ExpectedActionItems  int64
	DeletedInformations  int64
	DeletedDecisions     int64
	DeletedActionItems   int64
}

// TotalDeleted returns the total number of child rows removed.
func (s *DeletionSummary) TotalDeleted() int64 {
	return s.DeletedInformations + s.DeletedDecisions + s.DeletedActionItems
}

// AllDeleted reports whether every expected child row was removed.
func (s *DeletionSummary) AllDeleted() bool {
	return s.DeletedInformations == s.ExpectedInformations &&
		s.DeletedDecisions == s.ExpectedDecisions &&
		s.DeletedActionItems == s.ExpectedActionItems
}

// Create creates a new meeting record with creation date set to today
func (s *MoMService) Create(ctx context.Context, input CreateMoMInput) (*entities.MoM, error) {
	if !timeWindowValid(input.StartTime, input.EndTime) {
		return nil, usecaseErrors.ErrInvalidTimeWindow
	}

	status := input.Status
	if status == "" {
		status = entities.MoMStatusOpen
	}

	mom := &entities.MoM{
		MeetingDate:    input.MeetingDate,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Attendees:      datatypes.JSONSlice[string](input.Attendees),
		Absent:         datatypes.JSONSlice[string](input.Absent),
		OuterAttendees: datatypes.JSONSlice[string](input.OuterAttendees),
		Project:        input.Project,
		MeetingType:    input.MeetingType,
		LocationLink:   input.LocationLink,
		Status:         status,
		CreatedAt:      dates.Today(),
		CreatedBy:      input.CreatedBy,
	}
	mom.NormalizeAttendees()

	if err := s.momRepo.Create(ctx, mom); err != nil {
		return nil, fmt.Errorf("failed to create mom: %w", err)
	}
	return mom, nil
}

// GetByID retrieves a meeting record by ID
func (s *MoMService) GetByID(ctx context.Context, id int) (*entities.MoM, error) {
	mom, err := s.momRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMoMNotFound
		}
		return nil, fmt.Errorf("failed to get mom: %w", err)
	}
	return mom, nil
}

// List retrieves meeting records with filters and pagination
func (s *MoMService) List(ctx context.Context, filters repositories.MoMFilters) ([]*entities.MoM, int64, error) {
	if filters.Skip < 0 {
		return nil, 0, usecaseErrors.ErrInvalidSkip
	}
	if filters.Limit < 1 || filters.Limit > 100 {
		return nil, 0, usecaseErrors.ErrInvalidLimit
	}

	moms, total, err := s.momRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list moms: %w", err)
	}
	return moms, total, nil
}

// GetByProject retrieves all meeting records for a project
func (s *MoMService) GetByProject(ctx context.Context, project string) ([]*entities.MoM, error) {
	moms, err := s.momRepo.FindByProject(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to list moms by project: %w", err)
	}
	return moms, nil
}

// Update applies a partial update, touching only the provided fields
func (s *MoMService) Update(ctx context.Context, id int, input UpdateMoMInput) (*entities.MoM, error) {
	mom, err := s.momRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMoMNotFound
		}
		return nil, fmt.Errorf("failed to get mom: %w", err)
	}

	if input.MeetingDate != nil {
		mom.MeetingDate = *input.MeetingDate
	}
	if input.StartTime != nil {
		mom.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		mom.EndTime = *input.EndTime
	}
	if input.Attendees != nil {
		mom.Attendees = datatypes.JSONSlice[string](*input.Attendees)
	}
	if input.Absent != nil {
		mom.Absent = datatypes.JSONSlice[string](*input.Absent)
	}
	if input.OuterAttendees != nil {
		mom.OuterAttendees = datatypes.JSONSlice[string](*input.OuterAttendees)
	}
	if input.Project != nil {
		mom.Project = *input.Project
	}
	if input.MeetingType != nil {
		mom.MeetingType = *input.MeetingType
	}
	if input.LocationLink != nil {
		mom.LocationLink = *input.LocationLink
	}
	if input.Status != nil {
		mom.Status = *input.Status
	}

	if !timeWindowValid(mom.StartTime, mom.EndTime) {
		return nil, usecaseErrors.ErrInvalidTimeWindow
	}

	if err := s.momRepo.Update(ctx, mom); err != nil {
		return nil, fmt.Errorf("failed to update mom: %w", err)
	}
	return mom, nil
}

// UpdateStatus updates only the status field
func (s *MoMService) UpdateStatus(ctx context.Context, id int, status entities.MoMStatus) (*entities.MoM, error) {
	mom, err := s.momRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMoMNotFound
		}
		return nil, fmt.Errorf("failed to get mom: %w", err)
	}

	mom.Status = status
	if err := s.momRepo.Update(ctx, mom); err != nil {
		return nil, fmt.Errorf("failed to update mom status: %w", err)
	}
	return mom, nil
}

// Delete removes the meeting row only; children survive. Cascade removal is
// DeleteComplete.
func (s *MoMService) Delete(ctx context.Context, id int) error {
	existed, err := s.momRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete mom: %w", err)
	}
	if !existed {
		return usecaseErrors.ErrMoMNotFound
	}
	return nil
}

// GetComplete assembles the full meeting view with informations, decisions
// and action items
func (s *MoMService) GetComplete(ctx context.Context, id int) (*CompleteMoM, error) {
	mom, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	infos, err := s.infoRepo.FindByMoMID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load informations: %w", err)
	}
	decisions, err := s.decRepo.FindByMoMID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load decisions: %w", err)
	}
	items, err := s.actionRepo.FindByMoMID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load action items: %w", err)
	}

	return &CompleteMoM{
		MoM:          mom,
		Informations: infos,
		Decisions:    decisions,
		ActionItems:  items,
	}, nil
}

// DeleteComplete removes a meeting and all child records inside one
// transaction. Counts are captured before each delete and verified against
// what the deletes reported; any failure rolls the whole cascade back.
func (s *MoMService) DeleteComplete(ctx context.Context, id int) (*DeletionSummary, error) {
	var summary *DeletionSummary

	err := s.tx.InTx(ctx, func(stores repositories.Stores) error {
		mom, err := stores.MoMs.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecaseErrors.ErrMoMNotFound
			}
			return fmt.Errorf("failed to get mom: %w", err)
		}

		expectedInfos, err := stores.Informations.CountByMoMID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count informations: %w", err)
		}
		expectedDecisions, err := stores.Decisions.CountByMoMID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count decisions: %w", err)
		}
		expectedItems, err := stores.ActionItems.CountByMoMID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count action items: %w", err)
		}

		deletedInfos, err := stores.Informations.DeleteByMoMID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete informations: %w", err)
		}
		deletedDecisions, err := stores.Decisions.DeleteByMoMID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete decisions: %w", err)
		}
		deletedItems, err := stores.ActionItems.DeleteByMoMID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete action items: %w", err)
		}

		existed, err := stores.MoMs.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete mom: %w", err)
		}
		if !existed {
			return fmt.Errorf("mom %d vanished mid-delete", id)
		}

		summary = &DeletionSummary{
			MoM:                  mom,
			ExpectedInformations: expectedInfos,
			ExpectedDecisions:    expectedDecisions,
			ExpectedActionItems:  expectedItems,
			DeletedInformations:  deletedInfos,
			DeletedDecisions:     deletedDecisions,
			DeletedActionItems:   deletedItems,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// timeWindowValid checks start < end on the day clock.
func timeWindowValid(start, end datatypes.Time) bool {
	return int64(start) < int64(end)
}
