package repositories

import (
	"context"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
)

// DecisionRepository defines the interface for meeting decision records
type DecisionRepository interface {
	Create(ctx context.Context, decision *entities.MoMDecision) error

	FindByID(ctx context.Context, id int) (*entities.MoMDecision, error)

	// List retrieves decisions optionally scoped to a meeting, newest first,
	// with pagination
	List(ctx context.Context, momID *int, skip, limit int) ([]*entities.MoMDecision, int64, error)

	// FindByMoMID retrieves all decisions for a meeting in insertion order
	FindByMoMID(ctx context.Context, momID int) ([]*entities.MoMDecision, error)

	Update(ctx context.Context, decision *entities.MoMDecision) error

	// Delete removes one decision; returns whether a row existed
	Delete(ctx context.Context, id int) (bool, error)

	// CountByMoMID counts decisions scoped to a meeting
	CountByMoMID(ctx context.Context, momID int) (int64, error)

	// DeleteByMoMID bulk-deletes a meeting's decisions and returns the
	// count, captured before the delete executes
	DeleteByMoMID(ctx context.Context, momID int) (int64, error)
}
