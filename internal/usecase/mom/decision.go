package mom

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
	usecaseErrors "github.com/orbitrondev/mom-service/internal/usecase/errors"
)

// DecisionUsecase defines the meeting decision record use cases
type DecisionUsecase interface {
	Create(ctx context.Context, momID int, text string) (*entities.MoMDecision, error)
	GetByID(ctx context.Context, id int) (*entities.MoMDecision, error)
	List(ctx context.Context, momID *int, skip, limit int) ([]*entities.MoMDecision, int64, error)
	GetByMoM(ctx context.Context, momID int) ([]*entities.MoMDecision, error)
	Update(ctx context.Context, id int, text string) (*entities.MoMDecision, error)
	Delete(ctx context.Context, id int) error
	DeleteByMoM(ctx context.Context, momID int) (int64, error)
}

// DecisionService handles decision record business logic
type DecisionService struct {
	repo repositories.DecisionRepository
}

// NewDecisionService creates a new decision record service
func NewDecisionService(repo repositories.DecisionRepository) *DecisionService {
	return &DecisionService{repo: repo}
}

func (s *DecisionService) Create(ctx context.Context, momID int, text string) (*entities.MoMDecision, error) {
	if momID <= 0 {
		return nil, usecaseErrors.ErrInvalidMeetingID
	}

	decision := &entities.MoMDecision{MomID: momID, Decision: text}
	if err := s.repo.Create(ctx, decision); err != nil {
		return nil, fmt.Errorf("failed to create decision: %w", err)
	}
	return decision, nil
}

func (s *DecisionService) GetByID(ctx context.Context, id int) (*entities.MoMDecision, error) {
	decision, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrDecisionNotFound
		}
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}
	return decision, nil
}

func (s *DecisionService) List(ctx context.Context, momID *int, skip, limit int) ([]*entities.MoMDecision, int64, error) {
	if skip < 0 {
		return nil, 0, usecaseErrors.ErrInvalidSkip
	}
	if limit < 1 || limit > 100 {
		return nil, 0, usecaseErrors.ErrInvalidLimit
	}

	decisions, total, err := s.repo.List(ctx, momID, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list decisions: %w", err)
	}
	return decisions, total, nil
}

func (s *DecisionService) GetByMoM(ctx context.Context, momID int) ([]*entities.MoMDecision, error) {
	decisions, err := s.repo.FindByMoMID(ctx, momID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	return decisions, nil
}

func (s *DecisionService) Update(ctx context.Context, id int, text string) (*entities.MoMDecision, error) {
	decision, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision.Decision = text
	if err := s.repo.Update(ctx, decision); err != nil {
		return nil, fmt.Errorf("failed to update decision: %w", err)
	}
	return decision, nil
}

func (s *DecisionService) Delete(ctx context.Context, id int) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete decision: %w", err)
	}
	if !existed {
		return usecaseErrors.ErrDecisionNotFound
	}
	return nil
}

func (s *DecisionService) DeleteByMoM(ctx context.Context, momID int) (int64, error) {
	count, err := s.repo.DeleteByMoMID(ctx, momID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete decisions: %w", err)
	}
	return count, nil
}
