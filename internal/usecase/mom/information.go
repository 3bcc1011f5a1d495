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

// InformationUsecase defines the meeting information note use cases
type InformationUsecase interface {
	Create(ctx context.Context, momID int, text string) (*entities.MoMInformation, error)
	GetByID(ctx context.Context, id int) (*entities.MoMInformation, error)
	List(ctx context.Context, momID *int, skip, limit int) ([]*entities.MoMInformation, int64, error)
	GetByMoM(ctx context.Context, momID int) ([]*entities.MoMInformation, error)
	Update(ctx context.Context, id int, text string) (*entities.MoMInformation, error)
	Delete(ctx context.Context, id int) error
	DeleteByMoM(ctx context.Context, momID int) (int64, error)
}

// InformationService handles information note business logic
type InformationService struct {
	repo repositories.InformationRepository
}

// NewInformationService creates a new information note service
func NewInformationService(repo repositories.InformationRepository) *InformationService {
	return &InformationService{repo: repo}
}

func (s *InformationService) Create(ctx context.Context, momID int, text string) (*entities.MoMInformation, error) {
	if momID <= 0 {
		return nil, usecaseErrors.ErrInvalidMeetingID
	}

	info := &entities.MoMInformation{MomID: momID, Information: text}
	if err := s.repo.Create(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to create information: %w", err)
	}
	return info, nil
}

func (s *InformationService) GetByID(ctx context.Context, id int) (*entities.MoMInformation, error) {
	info, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrInformationNotFound
		}
		return nil, fmt.Errorf("failed to get information: %w", err)
	}
	return info, nil
}

func (s *InformationService) List(ctx context.Context, momID *int, skip, limit int) ([]*entities.MoMInformation, int64, error) {
	if skip < 0 {
		return nil, 0, usecaseErrors.ErrInvalidSkip
	}
	if limit < 1 || limit > 100 {
		return nil, 0, usecaseErrors.ErrInvalidLimit
	}

	infos, total, err := s.repo.List(ctx, momID, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list informations: %w", err)
	}
	return infos, total, nil
}

func (s *InformationService) GetByMoM(ctx context.Context, momID int) ([]*entities.MoMInformation, error) {
	infos, err := s.repo.FindByMoMID(ctx, momID)
	if err != nil {
		return nil, fmt.Errorf("failed to list informations: %w", err)
	}
	return infos, nil
}

func (s *InformationService) Update(ctx context.Context, id int, text string) (*entities.MoMInformation, error) {
	info, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	info.Information = text
	if err := s.repo.Update(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to update information: %w", err)
	}
	return info, nil
}

func (s *InformationService) Delete(ctx context.Context, id int) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete information: %w", err)
	}
	if !existed {
		return usecaseErrors.ErrInformationNotFound
	}
	return nil
}

func (s *InformationService) DeleteByMoM(ctx context.Context, momID int) (int64, error) {
	count, err := s.repo.DeleteByMoMID(ctx, momID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete informations: %w", err)
	}
	return count, nil
}
