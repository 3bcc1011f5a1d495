package repositories

import (
	"context"

	"gorm.io/datatypes"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
)

// MoMRepository defines the interface for meeting record data access
type MoMRepository interface {
	// Create persists a new meeting record
	Create(ctx context.Context, mom *entities.MoM) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id int) (*entities.MoM, error)

	// List retrieves meetings with filters and pagination, ordered by
	// meeting date descending then creation date descending
	List(ctx context.Context, filters MoMFilters) ([]*entities.MoM, int64, error)

	// FindByProject retrieves all meetings whose project matches the given
	// substring, case-insensitively, ordered by meeting date descending
	FindByProject(ctx context.Context, project string) ([]*entities.MoM, error)

	// Update saves the full meeting row
	Update(ctx context.Context, mom *entities.MoM) error

	// Delete removes the meeting row only; children stay untouched.
	// Returns whether a row existed.
	Delete(ctx context.Context, id int) (bool, error)
}

// MoMFilters represents filter options for listing meetings. Pointer fields
// are applied only when non-nil; Project is a case-insensitive substring.
type MoMFilters struct {
	Project     string
	Status      *entities.MoMStatus
	MeetingType *entities.MeetingType
	MeetingDate *datatypes.Date
	CreatedBy   *int
	Skip        int
	Limit       int
}
