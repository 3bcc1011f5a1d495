package repositories

import "context"

// Stores bundles transaction-scoped repositories. Inside TxManager.InTx all
// stores share one database transaction.
type Stores struct {
	MoMs         MoMRepository
	Informations InformationRepository
	Decisions    DecisionRepository
	ActionItems  ActionItemRepository
}

// TxManager runs a function inside a single database transaction. Any error
// returned by fn rolls back every store operation performed through it.
type TxManager interface {
	InTx(ctx context.Context, fn func(stores Stores) error) error
}
