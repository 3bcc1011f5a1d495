package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/orbitrondev/mom-service/internal/domain/repositories"
)

// txManager implements repositories.TxManager on top of gorm transactions
type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager over the given connection
func NewTxManager(db *gorm.DB) repositories.TxManager {
	return &txManager{db: db}
}

// InTx runs fn with transaction-scoped repositories. The whole body commits
// or rolls back as one unit.
func (m *txManager) InTx(ctx context.Context, fn func(stores repositories.Stores) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repositories.Stores{
			MoMs:         NewMoMRepository(tx),
			Informations: NewInformationRepository(tx),
			Decisions:    NewDecisionRepository(tx),
			ActionItems:  NewActionItemRepository(tx),
		})
	})
}
