package repositories

import (
	"context"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
)

// InformationRepository defines the interface for meeting information notes
type InformationRepository interface {
	Create(ctx context.Context, info *entities.MoMInformation) error

	FindByID(ctx context.Context, id int) (*entities.MoMInformation, error)

	// List retrieves notes optionally scoped to a meeting, newest first,
	// with pagination
	List(ctx context.Context, momID *int, skip, limit int) ([]*entities.MoMInformation, int64, error)

	// FindByMoMID retrieves all notes for a meeting in insertion order
	FindByMoMID(ctx context.Context, momID int) ([]*entities.MoMInformation, error)

	Update(ctx context.Context, info *entities.MoMInformation) error

	// Delete removes one note; returns whether a row existed
	Delete(ctx context.Context, id int) (bool, error)

	// CountByMoMID counts notes scoped to a meeting
	CountByMoMID(ctx context.Context, momID int) (int64, error)

	// DeleteByMoMID bulk-deletes a meeting's notes and returns the count,
	// captured before the delete executes
	DeleteByMoMID(ctx context.Context, momID int) (int64, error)
}
